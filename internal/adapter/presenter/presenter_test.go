package presenter

import (
	"math"
	"testing"

	"construtora_erp/internal/domain/entities"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{120.5, "R$ 120,50"},
		{1234.5, "R$ 1.234,50"},
		{-40, "-R$ 40,00"},
		{math.NaN(), "R$ 0,00"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.in); got != tc.want {
			t.Fatalf("FormatBRL(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2026-11-03":                "03/11/2026",
		"2026-11-03T00:00:00.000Z":  "03/11/2026",
		"2026-11-03T00:00:00-03:00": "03/11/2026",
		"":                          "-",
		"03/11/2026":                "03/11/2026",
	}
	for in, want := range cases {
		if got := FormatDate(in); got != want {
			t.Fatalf("FormatDate(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestStatusBadge(t *testing.T) {
	cases := map[entities.QuotationStatus]string{
		entities.QuotationStatusAberta:    "yellow",
		entities.QuotationStatusConcluida: "green",
		entities.QuotationStatusCancelada: "red",
		"EM_ANALISE":                      "gray",
	}
	for status, color := range cases {
		if got := StatusBadge(status); got.Color != color {
			t.Fatalf("StatusBadge(%s): expected %s, got %+v", status, color, got)
		}
	}
}

func TestModeSelector(t *testing.T) {
	modes := ModeSelector("/v1/cotacoes", entities.QuotationStatusConcluida)
	if len(modes) != 4 {
		t.Fatalf("expected 4 modes, got %d", len(modes))
	}
	active := 0
	for _, m := range modes {
		if m.Active {
			active++
			if m.Value != "CONCLUIDA" || m.Href != "/v1/cotacoes?status=CONCLUIDA" {
				t.Fatalf("unexpected active mode: %+v", m)
			}
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active mode, got %d", active)
	}
	if modes[0].Href != "/v1/cotacoes" {
		t.Fatalf("unexpected href for the unfiltered tab: %s", modes[0].Href)
	}

	if all := ModeSelector("/v1/cotacoes", ""); !all[0].Active {
		t.Fatalf("expected first tab active without filter")
	}
}

func TestQuotationResults(t *testing.T) {
	rows := QuotationResults([]entities.Proposal{
		{ID: 1, UnitPrice: 5},
		{ID: 2, UnitPrice: 4, BestPrice: true, Supplier: entities.Supplier{Name: "Depósito Central"}},
	}, 1, true)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].Selected || rows[0].IsBestPrice || rows[0].UnitPriceLabel != "R$ 5,00" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Selected || !rows[1].IsBestPrice || rows[1].Supplier != "Depósito Central" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}

	if none := QuotationResults([]entities.Proposal{{ID: 0}}, 0, false); none[0].Selected {
		t.Fatalf("expected no selection")
	}
}
