package response

import (
	"construtora_erp/internal/adapter/presenter"
	"construtora_erp/internal/usecase"
)

type QuotationHeaderResponse struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	Badge           presenter.Badge `json:"badge"`
	Obra            string          `json:"obra"`
	Insumo          string          `json:"insumo"`
	Unidade         string          `json:"unidade"`
	Quantidade      float64         `json:"quantidade"`
	DataNecessidade string          `json:"dataNecessidade"`
}

type EmptyStateResponse struct {
	Message string       `json:"mensagem"`
	Action  PromptAction `json:"acao"`
	Enabled bool         `json:"habilitada"`
}

type DetailLinks struct {
	Self       string `json:"self"`
	Select     string `json:"selecao"`
	Regenerate string `json:"regerar"`
	Confirm    string `json:"confirmar"`
	Close      string `json:"fechar"`
}

type DetailViewResponse struct {
	Success            bool                    `json:"success"`
	ViewID             string                  `json:"telaId"`
	Quotation          QuotationHeaderResponse `json:"cotacao"`
	Proposals          []presenter.ResultRow   `json:"propostas"`
	SelectedProposalID *int64                  `json:"propostaSelecionadaId"`
	Total              float64                 `json:"total"`
	TotalLabel         string                  `json:"totalFormatado"`
	State              string                  `json:"estado"`
	CanRegenerate      bool                    `json:"podeRegerar"`
	CanConfirm         bool                    `json:"podeConfirmar"`
	EmptyState         *EmptyStateResponse     `json:"estadoVazio,omitempty"`
	Links              *DetailLinks            `json:"links,omitempty"`
	Redirect           string                  `json:"redirect,omitempty"`
	Notification       *Notification           `json:"notificacao,omitempty"`
}

// FromDetailSnapshot renders a detail view. viewsRoute is the base route of
// detail views (e.g. /v1/telas).
func FromDetailSnapshot(viewsRoute string, s usecase.DetailSnapshot) DetailViewResponse {
	q := s.Quotation
	res := DetailViewResponse{
		Success: true,
		ViewID:  s.ViewID,
		Quotation: QuotationHeaderResponse{
			ID:              q.ID,
			Status:          string(q.Status),
			Badge:           presenter.StatusBadge(q.Status),
			Obra:            q.Obra.Nome,
			Insumo:          q.Insumo.Nome,
			Unidade:         q.Insumo.Unidade,
			Quantidade:      q.Quantity,
			DataNecessidade: presenter.FormatDate(q.NeedBy),
		},
		Proposals:     presenter.QuotationResults(s.Proposals, s.SelectedID, s.HasSelection),
		Total:         s.Total,
		TotalLabel:    presenter.FormatBRL(s.Total),
		State:         string(s.State),
		CanRegenerate: s.CanRegenerate(),
		CanConfirm:    s.CanConfirm(),
	}
	if s.HasSelection {
		id := s.SelectedID
		res.SelectedProposalID = &id
	}

	self := viewsRoute + "/" + s.ViewID
	if !s.Closed {
		res.Links = &DetailLinks{
			Self:       self,
			Select:     self + "/selecao",
			Regenerate: self + "/regerar",
			Confirm:    self + "/confirmar",
			Close:      self,
		}
	}
	if s.EmptyState() {
		res.EmptyState = &EmptyStateResponse{
			Message: "Nenhuma proposta encontrada para esta cotação.",
			Action:  PromptAction{Label: "Buscar fornecedores agora", Method: "POST", Href: self + "/regerar"},
			Enabled: s.CanRegenerate(),
		}
	}
	return res
}
