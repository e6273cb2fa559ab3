package entities

type Supplier struct {
	Name  string `json:"nome"`
	TaxID string `json:"cnpj"`
}

// Proposal is a supplier offer against a quotation.
//
// BestPrice is set exclusively by the backend. Nothing in this service
// compares prices; the flag is only rendered and used for default selection.
type Proposal struct {
	ID           int64    `json:"id"`
	Supplier     Supplier `json:"fornecedor"`
	UnitPrice    float64  `json:"valorUnitario"`
	LeadTime     string   `json:"prazoEntrega"`
	PaymentTerms string   `json:"condicoesPagamento"`
	BestPrice    bool     `json:"melhorPreco"`
}
