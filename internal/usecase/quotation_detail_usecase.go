package usecase

import (
	"context"
	"construtora_erp/internal/domain/entities"
	"construtora_erp/internal/usecase/interfaces"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrViewNotFound       = errors.New("detail view not found")
	ErrDetailLoadFailed   = errors.New("quotation detail could not be loaded")
	ErrQuotationNotOpen   = errors.New("quotation is not open")
	ErrActionInProgress   = errors.New("another action is in progress")
	ErrNoProposalSelected = errors.New("no proposal selected")
	ErrProposalNotFound   = errors.New("proposal not found")
)

const (
	DefaultViewIdleTTL    = 30 * time.Minute
	DefaultJournalTimeout = 15 * time.Second
)

// IQuotationDetailUseCase drives the quotation detail workflow.
//
// Each Open creates an independent view instance (one per screen). State
// transitions observed by a view:
//   - ABERTA --Regenerate--> ABERTA (proposal set replaced)
//   - ABERTA --Confirm-->    CONCLUIDA (view closes)

type IQuotationDetailUseCase interface {
	Open(ctx context.Context, quotationID int64) (DetailSnapshot, error)
	Get(ctx context.Context, viewID string) (DetailSnapshot, error)
	Select(ctx context.Context, viewID string, proposalID int64) (DetailSnapshot, error)
	Regenerate(ctx context.Context, viewID string) (DetailSnapshot, error)
	Confirm(ctx context.Context, viewID string) (DetailSnapshot, error)
	Close(ctx context.Context, viewID string) error
}

type QuotationDetailUseCase struct {
	gateway interfaces.IQuotationGateway
	journal interfaces.IPurchaseConfirmationRepository
	idleTTL time.Duration
	// journalTimeout bounds the confirmation journal write.
	journalTimeout time.Duration
	now            func() time.Time

	mu    sync.Mutex
	views map[string]*DetailView
}

var _ IQuotationDetailUseCase = (*QuotationDetailUseCase)(nil)

// NewQuotationDetailUseCase builds the use case. journal may be nil, in which
// case confirmations are not recorded.
func NewQuotationDetailUseCase(gateway interfaces.IQuotationGateway, journal interfaces.IPurchaseConfirmationRepository, idleTTL, journalTimeout time.Duration) *QuotationDetailUseCase {
	if idleTTL <= 0 {
		idleTTL = DefaultViewIdleTTL
	}
	if journalTimeout <= 0 {
		journalTimeout = DefaultJournalTimeout
	}
	return &QuotationDetailUseCase{
		gateway:        gateway,
		journal:        journal,
		idleTTL:        idleTTL,
		journalTimeout: journalTimeout,
		now:            func() time.Time { return time.Now().UTC() },
		views:          make(map[string]*DetailView),
	}
}

// Open loads the quotation header and its proposals concurrently. Any failure
// fails the whole open; no partially loaded view is kept.
func (u *QuotationDetailUseCase) Open(ctx context.Context, quotationID int64) (DetailSnapshot, error) {
	if quotationID <= 0 {
		return DetailSnapshot{}, ErrInvalidQuotationID
	}
	u.sweepIdle()
	log.Printf("[cotacao][usecase] open start quotation_id=%d", quotationID)

	var (
		quotation entities.Quotation
		proposals []entities.Proposal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quotation, err = u.gateway.GetQuotation(gctx, quotationID)
		return err
	})
	g.Go(func() error {
		var err error
		proposals, err = u.gateway.ListProposals(gctx, quotationID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[cotacao][usecase] open failed quotation_id=%d err=%v", quotationID, err)
		return DetailSnapshot{}, fmt.Errorf("%w: %w", ErrDetailLoadFailed, err)
	}

	v := newDetailView(uuid.NewString(), quotation, proposals, u.now())
	u.mu.Lock()
	u.views[v.id] = v
	u.mu.Unlock()

	snap, _ := v.snapshot(u.now())
	log.Printf("[cotacao][usecase] open success quotation_id=%d view_id=%s status=%s proposals=%d", quotationID, v.id, quotation.Status, len(proposals))
	return snap, nil
}

func (u *QuotationDetailUseCase) Get(_ context.Context, viewID string) (DetailSnapshot, error) {
	v, err := u.view(viewID)
	if err != nil {
		return DetailSnapshot{}, err
	}
	return v.snapshot(u.now())
}

// Select changes the highlighted proposal. Local state only.
func (u *QuotationDetailUseCase) Select(_ context.Context, viewID string, proposalID int64) (DetailSnapshot, error) {
	v, err := u.view(viewID)
	if err != nil {
		return DetailSnapshot{}, err
	}
	return v.selectProposal(proposalID, u.now())
}

// Regenerate asks the backend for a fresh proposal set and adopts it wholesale.
func (u *QuotationDetailUseCase) Regenerate(ctx context.Context, viewID string) (DetailSnapshot, error) {
	v, err := u.view(viewID)
	if err != nil {
		return DetailSnapshot{}, err
	}

	action, err := v.begin(ctx, entities.ActionStateRegenerating, nil)
	if err != nil {
		log.Printf("[cotacao][usecase] regenerate refused view_id=%s err=%v", viewID, err)
		return DetailSnapshot{}, err
	}
	defer v.settle(action.gen, u.now(), nil)

	quotationID := action.quotation.ID
	log.Printf("[cotacao][usecase] regenerate start view_id=%s quotation_id=%d", viewID, quotationID)
	proposals, err := u.gateway.RegenerateProposals(action.ctx, quotationID)
	if err != nil {
		log.Printf("[cotacao][usecase] regenerate failed view_id=%s quotation_id=%d err=%v", viewID, quotationID, err)
		return DetailSnapshot{}, err
	}

	snap := v.settle(action.gen, u.now(), func(v *DetailView) {
		v.replaceProposalsLocked(proposals)
	})
	if snap.Closed {
		log.Printf("[cotacao][usecase] regenerate discarded view_id=%s quotation_id=%d reason=view closed", viewID, quotationID)
		return DetailSnapshot{}, ErrViewNotFound
	}
	log.Printf("[cotacao][usecase] regenerate success view_id=%s quotation_id=%d proposals=%d", viewID, quotationID, len(snap.Proposals))
	return snap, nil
}

// Confirm commits the selected proposal. On success the view observes the
// quotation as CONCLUIDA and is closed.
func (u *QuotationDetailUseCase) Confirm(ctx context.Context, viewID string) (DetailSnapshot, error) {
	v, err := u.view(viewID)
	if err != nil {
		return DetailSnapshot{}, err
	}

	action, err := v.begin(ctx, entities.ActionStateConfirming, func(v *DetailView) error {
		if !v.hasSelection {
			return ErrNoProposalSelected
		}
		return nil
	})
	if err != nil {
		log.Printf("[cotacao][usecase] confirm refused view_id=%s err=%v", viewID, err)
		return DetailSnapshot{}, err
	}
	defer v.settle(action.gen, u.now(), nil)

	proposal := action.selected
	log.Printf("[cotacao][usecase] confirm start view_id=%s quotation_id=%d proposal_id=%d", viewID, action.quotation.ID, proposal.ID)
	if err := u.gateway.ConfirmProposal(action.ctx, proposal.ID); err != nil {
		log.Printf("[cotacao][usecase] confirm failed view_id=%s proposal_id=%d err=%v", viewID, proposal.ID, err)
		return DetailSnapshot{}, err
	}

	snap := v.settle(action.gen, u.now(), func(v *DetailView) {
		v.quotation.Status = entities.QuotationStatusConcluida
	})
	u.remove(viewID)
	snap.Closed = true
	u.record(ctx, action.quotation, proposal)

	log.Printf("[cotacao][usecase] confirm success view_id=%s quotation_id=%d proposal_id=%d total=%.2f", viewID, action.quotation.ID, proposal.ID, snap.Total)
	return snap, nil
}

// Close tears a view down, cancelling any request still in flight.
func (u *QuotationDetailUseCase) Close(_ context.Context, viewID string) error {
	if _, err := u.view(viewID); err != nil {
		return err
	}
	u.remove(viewID)
	log.Printf("[cotacao][usecase] view closed view_id=%s", viewID)
	return nil
}

// record journals a confirmed purchase. The purchase is already committed by
// the backend, so a journal failure is only logged. The write survives a
// cancelled request but not past journalTimeout or the request deadline,
// whichever comes first.
func (u *QuotationDetailUseCase) record(ctx context.Context, q entities.Quotation, p entities.Proposal) {
	if u.journal == nil {
		return
	}
	timeout := u.journalTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	c := entities.PurchaseConfirmation{
		ID:            uuid.NewString(),
		QuotationID:   q.ID,
		ProposalID:    p.ID,
		SupplierName:  p.Supplier.Name,
		SupplierTaxID: p.Supplier.TaxID,
		UnitPrice:     p.UnitPrice,
		Quantity:      q.Quantity,
		Total:         EstimatedTotal(&p, q.Quantity),
		ConfirmedAt:   u.now(),
	}
	if _, err := u.journal.Create(writeCtx, c); err != nil {
		log.Printf("[cotacao][usecase] journal write failed quotation_id=%d proposal_id=%d err=%v", q.ID, p.ID, err)
	}
}

func (u *QuotationDetailUseCase) view(viewID string) (*DetailView, error) {
	viewID = strings.TrimSpace(viewID)
	if viewID == "" {
		return nil, ErrViewNotFound
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	v, ok := u.views[viewID]
	if !ok {
		return nil, ErrViewNotFound
	}
	return v, nil
}

func (u *QuotationDetailUseCase) remove(viewID string) {
	u.mu.Lock()
	v, ok := u.views[viewID]
	delete(u.views, viewID)
	u.mu.Unlock()
	if ok {
		v.close()
	}
}

// sweepIdle drops views untouched for longer than idleTTL. Busy views stay.
func (u *QuotationDetailUseCase) sweepIdle() {
	now := u.now()
	u.mu.Lock()
	var stale []*DetailView
	for id, v := range u.views {
		if v.idleSince(now, u.idleTTL) {
			stale = append(stale, v)
			delete(u.views, id)
		}
	}
	u.mu.Unlock()

	for _, v := range stale {
		v.close()
	}
	if len(stale) > 0 {
		log.Printf("[cotacao][usecase] swept idle views count=%d", len(stale))
	}
}
