package request

import (
	"errors"
	"strconv"
	"strings"

	"construtora_erp/internal/domain/entities"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID reads a positive numeric route parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseStatusFilter returns the status filter of the list view. Matching is
// exact, so an unknown value simply filters everything out.
func ParseStatusFilter(raw string) entities.QuotationStatus {
	return entities.QuotationStatus(strings.TrimSpace(raw))
}

// ParseConfirmation reads the "confirmar" query flag of a destructive action.
func ParseConfirmation(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "sim", "yes", "on":
		return true
	}
	return false
}
