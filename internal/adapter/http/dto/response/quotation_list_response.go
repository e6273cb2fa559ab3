package response

import (
	"construtora_erp/internal/adapter/presenter"
	"construtora_erp/internal/domain/entities"
	"fmt"
)

type QuotationRowResponse struct {
	ID                  int64           `json:"id"`
	Status              string          `json:"status"`
	Badge               presenter.Badge `json:"badge"`
	Obra                string          `json:"obra"`
	Insumo              string          `json:"insumo"`
	Unidade             string          `json:"unidade"`
	Quantidade          float64         `json:"quantidade"`
	DataNecessidade     string          `json:"dataNecessidade"`
	MelhorValorUnitario float64         `json:"melhorValorUnitario"`
	MelhorValorLabel    string          `json:"melhorValorUnitarioFormatado"`
	PodeExcluir         bool            `json:"podeExcluir"`
	DetalhesURL         string          `json:"detalhesUrl"`
}

type QuotationListResponse struct {
	Success      bool                   `json:"success"`
	Filter       string                 `json:"filtro"`
	Modes        []presenter.Mode       `json:"modos"`
	Rows         []QuotationRowResponse `json:"linhas"`
	Total        int                    `json:"total"`
	Notification *Notification          `json:"notificacao,omitempty"`
}

// DetailsURL is the route that opens a detail view for a quotation.
func DetailsURL(listRoute string, id int64) string {
	return fmt.Sprintf("%s/%d/telas", listRoute, id)
}

func FromQuotation(listRoute string, q entities.Quotation) QuotationRowResponse {
	return QuotationRowResponse{
		ID:                  q.ID,
		Status:              string(q.Status),
		Badge:               presenter.StatusBadge(q.Status),
		Obra:                q.Obra.Nome,
		Insumo:              q.Insumo.Nome,
		Unidade:             q.Insumo.Unidade,
		Quantidade:          q.Quantity,
		DataNecessidade:     presenter.FormatDate(q.NeedBy),
		MelhorValorUnitario: q.BestUnitPrice,
		MelhorValorLabel:    presenter.FormatBRL(q.BestUnitPrice),
		PodeExcluir:         q.Status != entities.QuotationStatusConcluida,
		DetalhesURL:         DetailsURL(listRoute, q.ID),
	}
}

// FromQuotationList renders already filtered quotations.
func FromQuotationList(listRoute string, filter entities.QuotationStatus, quotations []entities.Quotation, n *Notification) QuotationListResponse {
	rows := make([]QuotationRowResponse, 0, len(quotations))
	for _, q := range quotations {
		rows = append(rows, FromQuotation(listRoute, q))
	}
	return QuotationListResponse{
		Success:      n == nil || n.Level != LevelError,
		Filter:       string(filter),
		Modes:        presenter.ModeSelector(listRoute, filter),
		Rows:         rows,
		Total:        len(rows),
		Notification: n,
	}
}
