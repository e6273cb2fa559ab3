package entities

// QuotationStatus represents the lifecycle of a quotation (cotação) as reported
// by the ERP backend.
//
// Domain notes:
//   - The backend is the source of truth; this service only reacts to the value.
//   - ABERTA is the only status that accepts delete, regenerate and confirm.
//   - CONCLUIDA is terminal as far as this service is concerned.

type QuotationStatus string

const (
	QuotationStatusAberta    QuotationStatus = "ABERTA"
	QuotationStatusConcluida QuotationStatus = "CONCLUIDA"
	QuotationStatusCancelada QuotationStatus = "CANCELADA"
)

// IsOpen reports whether mutating actions are allowed for the status.
func (s QuotationStatus) IsOpen() bool {
	return s == QuotationStatusAberta
}

type Obra struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type Insumo struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	Unidade string `json:"unidade"`
}

// Quotation is the request for supplier pricing on a given insumo, quantity and
// need-by date. BestUnitPrice is denormalized by the backend for list display.
type Quotation struct {
	ID            int64           `json:"id"`
	Status        QuotationStatus `json:"status"`
	Obra          Obra            `json:"obra"`
	Insumo        Insumo          `json:"insumo"`
	Quantity      float64         `json:"quantidade"`
	NeedBy        string          `json:"dataNecessidade"`
	BestUnitPrice float64         `json:"melhorValorUnitario"`
}
