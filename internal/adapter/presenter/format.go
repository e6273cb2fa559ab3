package presenter

import (
	"construtora_erp/internal/domain/entities"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders v as Brazilian Real, e.g. "R$ 1.234,50".
func FormatBRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v < 0 {
		return "-R$ " + brPrinter.Sprintf("%.2f", -v)
	}
	return "R$ " + brPrinter.Sprintf("%.2f", v)
}

// FormatDate renders a backend date as dd/mm/yyyy.
//
// Only the calendar part of the value is used. Converting a date-only value
// to a local zone would shift it to the previous day west of UTC.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	if len(s) >= 10 {
		if d, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return d.Format("02/01/2006")
		}
	}
	return s
}

type Badge struct {
	Label string `json:"rotulo"`
	Color string `json:"cor"`
}

func StatusBadge(status entities.QuotationStatus) Badge {
	switch status {
	case entities.QuotationStatusAberta:
		return Badge{Label: "Aberta", Color: "yellow"}
	case entities.QuotationStatusConcluida:
		return Badge{Label: "Concluída", Color: "green"}
	case entities.QuotationStatusCancelada:
		return Badge{Label: "Cancelada", Color: "red"}
	default:
		return Badge{Label: string(status), Color: "gray"}
	}
}
