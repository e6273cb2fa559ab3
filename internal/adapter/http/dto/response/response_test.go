package response

import (
	"testing"
	"time"

	"construtora_erp/internal/domain/entities"
	"construtora_erp/internal/usecase"
)

func TestFromQuotationList(t *testing.T) {
	list := []entities.Quotation{
		{ID: 1, Status: entities.QuotationStatusAberta, BestUnitPrice: 120.5, NeedBy: "2026-11-03", Obra: entities.Obra{Nome: "Residencial Aurora"}},
		{ID: 2, Status: entities.QuotationStatusConcluida},
	}

	res := FromQuotationList("/v1/cotacoes", "", list, nil)
	if !res.Success || res.Total != 2 || len(res.Modes) != 4 {
		t.Fatalf("unexpected response: %+v", res)
	}
	first := res.Rows[0]
	if !first.PodeExcluir || first.Badge.Color != "yellow" || first.MelhorValorLabel != "R$ 120,50" || first.DataNecessidade != "03/11/2026" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.DetalhesURL != "/v1/cotacoes/1/telas" {
		t.Fatalf("unexpected details url: %s", first.DetalhesURL)
	}
	if res.Rows[1].PodeExcluir {
		t.Fatalf("completed quotation must not be deletable")
	}

	failed := FromQuotationList("/v1/cotacoes", "", nil, NewNotification(LevelError, "Erro ao carregar cotações"))
	if failed.Success || failed.Rows == nil || len(failed.Rows) != 0 {
		t.Fatalf("expected empty failed table, got %+v", failed)
	}
}

func TestFromDetailSnapshot(t *testing.T) {
	snap := usecase.DetailSnapshot{
		ViewID:       "view-1",
		Quotation:    entities.Quotation{ID: 7, Status: entities.QuotationStatusAberta, Quantity: 10},
		Proposals:    []entities.Proposal{{ID: 1, UnitPrice: 5}, {ID: 2, UnitPrice: 4, BestPrice: true}},
		SelectedID:   2,
		HasSelection: true,
		Total:        40,
		State:        entities.ActionStateIdle,
	}

	res := FromDetailSnapshot("/v1/telas", snap)
	if res.SelectedProposalID == nil || *res.SelectedProposalID != 2 || res.Total != 40 || res.TotalLabel != "R$ 40,00" {
		t.Fatalf("unexpected selection: %+v", res)
	}
	if !res.CanConfirm || !res.CanRegenerate || res.EmptyState != nil {
		t.Fatalf("unexpected controls: %+v", res)
	}
	if res.Links == nil || res.Links.Confirm != "/v1/telas/view-1/confirmar" {
		t.Fatalf("unexpected links: %+v", res.Links)
	}

	empty := snap
	empty.Proposals = nil
	empty.HasSelection = false
	empty.Total = 0
	res = FromDetailSnapshot("/v1/telas", empty)
	if res.EmptyState == nil || res.EmptyState.Action.Label != "Buscar fornecedores agora" || !res.EmptyState.Enabled {
		t.Fatalf("expected empty state, got %+v", res.EmptyState)
	}
	if res.SelectedProposalID != nil || res.CanConfirm {
		t.Fatalf("expected no selection, got %+v", res)
	}
}

func TestFromPurchaseConfirmation(t *testing.T) {
	now := time.Now().UTC()
	res := FromPurchaseConfirmation(entities.PurchaseConfirmation{ID: "c-1", QuotationID: 7, ProposalID: 1, Total: 50, ConfirmedAt: now})
	if res.ID != "c-1" || res.QuotationID != 7 || res.TotalLabel != "R$ 50,00" || !res.ConfirmedAt.Equal(now) {
		t.Fatalf("unexpected response: %+v", res)
	}
}
