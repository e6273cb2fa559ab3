package usecase

import (
	"context"
	"construtora_erp/internal/domain/entities"
	"construtora_erp/internal/usecase/interfaces"
	"errors"
	"log"
)

var (
	ErrInvalidQuotationID        = errors.New("invalid quotation id")
	ErrQuotationCompleted        = errors.New("quotation already completed")
	ErrDeleteNotConfirmed        = errors.New("delete not confirmed")
	ErrConfirmationJournalAbsent = errors.New("confirmation journal not configured")
)

// IQuotationListUseCase exposes the quotation list view operations.
//
//   - List loads the whole collection; filtering happens in memory (FilterByStatus).
//   - Delete is guarded: it needs an explicit confirmation and refuses CONCLUIDA.
//   - ListConfirmations reads the purchase confirmation journal of a quotation.

type IQuotationListUseCase interface {
	List(ctx context.Context) ([]entities.Quotation, error)
	Delete(ctx context.Context, id int64, confirmed bool) error
	ListConfirmations(ctx context.Context, quotationID int64) ([]entities.PurchaseConfirmation, error)
}

type QuotationListUseCase struct {
	gateway interfaces.IQuotationGateway
	journal interfaces.IPurchaseConfirmationRepository
}

var _ IQuotationListUseCase = (*QuotationListUseCase)(nil)

func NewQuotationListUseCase(gateway interfaces.IQuotationGateway, journal interfaces.IPurchaseConfirmationRepository) *QuotationListUseCase {
	return &QuotationListUseCase{gateway: gateway, journal: journal}
}

func (u *QuotationListUseCase) List(ctx context.Context) ([]entities.Quotation, error) {
	quotations, err := u.gateway.ListQuotations(ctx)
	if err != nil {
		log.Printf("[cotacao][usecase] list failed err=%v", err)
		return nil, err
	}
	if quotations == nil {
		quotations = []entities.Quotation{}
	}
	log.Printf("[cotacao][usecase] list success count=%d", len(quotations))
	return quotations, nil
}

// Delete removes an open quotation. The CONCLUIDA check is a guard of this
// service only; the backend may still reject the call on its own.
func (u *QuotationListUseCase) Delete(ctx context.Context, id int64, confirmed bool) error {
	if id <= 0 {
		return ErrInvalidQuotationID
	}
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	q, err := u.gateway.GetQuotation(ctx, id)
	if err != nil {
		log.Printf("[cotacao][usecase] delete lookup failed quotation_id=%d err=%v", id, err)
		return err
	}
	if q.Status == entities.QuotationStatusConcluida {
		log.Printf("[cotacao][usecase] delete refused quotation_id=%d status=%s", id, q.Status)
		return ErrQuotationCompleted
	}

	if err := u.gateway.DeleteQuotation(ctx, id); err != nil {
		log.Printf("[cotacao][usecase] delete failed quotation_id=%d err=%v", id, err)
		return err
	}
	log.Printf("[cotacao][usecase] delete success quotation_id=%d", id)
	return nil
}

func (u *QuotationListUseCase) ListConfirmations(ctx context.Context, quotationID int64) ([]entities.PurchaseConfirmation, error) {
	if quotationID <= 0 {
		return nil, ErrInvalidQuotationID
	}
	if u.journal == nil {
		return nil, ErrConfirmationJournalAbsent
	}
	items, err := u.journal.ListByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.PurchaseConfirmation{}
	}
	return items, nil
}

// FilterByStatus keeps the quotations whose status matches exactly.
// An empty status disables the filter.
func FilterByStatus(quotations []entities.Quotation, status entities.QuotationStatus) []entities.Quotation {
	if status == "" {
		return quotations
	}
	out := make([]entities.Quotation, 0, len(quotations))
	for _, q := range quotations {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out
}
