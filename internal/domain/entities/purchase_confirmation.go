package entities

import "time"

// PurchaseConfirmation records a purchase committed through the detail view.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
//
// The record is written after the backend accepted the confirmation and is
// never used to decide anything in the quotation flow.
type PurchaseConfirmation struct {
	ID            string    `json:"id"`
	QuotationID   int64     `json:"quotation_id"`
	ProposalID    int64     `json:"proposal_id"`
	SupplierName  string    `json:"supplier_name"`
	SupplierTaxID string    `json:"supplier_tax_id"`
	UnitPrice     float64   `json:"unit_price"`
	Quantity      float64   `json:"quantity"`
	Total         float64   `json:"total"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}
