package response

import (
	"construtora_erp/internal/adapter/presenter"
	"construtora_erp/internal/domain/entities"
	"time"
)

type PurchaseConfirmationResponse struct {
	ID            string    `json:"id"`
	QuotationID   int64     `json:"cotacaoId"`
	ProposalID    int64     `json:"propostaId"`
	SupplierName  string    `json:"fornecedor"`
	SupplierTaxID string    `json:"cnpj"`
	UnitPrice     float64   `json:"valorUnitario"`
	Quantity      float64   `json:"quantidade"`
	Total         float64   `json:"total"`
	TotalLabel    string    `json:"totalFormatado"`
	ConfirmedAt   time.Time `json:"confirmadoEm"`
}

func FromPurchaseConfirmation(c entities.PurchaseConfirmation) PurchaseConfirmationResponse {
	return PurchaseConfirmationResponse{
		ID:            c.ID,
		QuotationID:   c.QuotationID,
		ProposalID:    c.ProposalID,
		SupplierName:  c.SupplierName,
		SupplierTaxID: c.SupplierTaxID,
		UnitPrice:     c.UnitPrice,
		Quantity:      c.Quantity,
		Total:         c.Total,
		TotalLabel:    presenter.FormatBRL(c.Total),
		ConfirmedAt:   c.ConfirmedAt,
	}
}
