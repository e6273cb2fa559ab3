package presenter

import (
	"construtora_erp/internal/domain/entities"
	"net/url"
)

type Mode struct {
	Value  string `json:"valor"`
	Label  string `json:"rotulo"`
	Active bool   `json:"ativo"`
	Href   string `json:"href"`
}

var quotationModes = []Mode{
	{Value: "", Label: "Todas"},
	{Value: string(entities.QuotationStatusAberta), Label: "Abertas"},
	{Value: string(entities.QuotationStatusConcluida), Label: "Concluídas"},
	{Value: string(entities.QuotationStatusCancelada), Label: "Canceladas"},
}

// ModeSelector renders the status filter tabs of the list view, marking the
// active one. Each tab links back to listRoute with its filter applied.
func ModeSelector(listRoute string, active entities.QuotationStatus) []Mode {
	out := make([]Mode, 0, len(quotationModes))
	for _, m := range quotationModes {
		m.Active = m.Value == string(active)
		m.Href = listRoute
		if m.Value != "" {
			m.Href = listRoute + "?" + url.Values{"status": {m.Value}}.Encode()
		}
		out = append(out, m)
	}
	return out
}
