package presenter

import "construtora_erp/internal/domain/entities"

type ResultRow struct {
	ProposalID     int64   `json:"propostaId"`
	Supplier       string  `json:"fornecedor"`
	SupplierTaxID  string  `json:"cnpj"`
	UnitPrice      float64 `json:"valorUnitario"`
	UnitPriceLabel string  `json:"valorUnitarioFormatado"`
	LeadTime       string  `json:"prazoEntrega"`
	PaymentTerms   string  `json:"condicoesPagamento"`
	IsBestPrice    bool    `json:"isBestPrice"`
	Selected       bool    `json:"selecionada"`
}

// QuotationResults renders proposal rows. The best-price flag is copied from
// the backend as-is.
func QuotationResults(proposals []entities.Proposal, selectedID int64, hasSelection bool) []ResultRow {
	rows := make([]ResultRow, 0, len(proposals))
	for _, p := range proposals {
		rows = append(rows, ResultRow{
			ProposalID:     p.ID,
			Supplier:       p.Supplier.Name,
			SupplierTaxID:  p.Supplier.TaxID,
			UnitPrice:      p.UnitPrice,
			UnitPriceLabel: FormatBRL(p.UnitPrice),
			LeadTime:       p.LeadTime,
			PaymentTerms:   p.PaymentTerms,
			IsBestPrice:    p.BestPrice,
			Selected:       hasSelection && p.ID == selectedID,
		})
	}
	return rows
}
