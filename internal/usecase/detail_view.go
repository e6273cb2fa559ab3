package usecase

import (
	"context"
	"construtora_erp/internal/domain/entities"
	"math"
	"sync"
	"time"
)

// DetailSnapshot is a consistent copy of a detail view's state.
type DetailSnapshot struct {
	ViewID       string
	Quotation    entities.Quotation
	Proposals    []entities.Proposal
	SelectedID   int64
	HasSelection bool
	Total        float64
	State        entities.ActionState
	Closed       bool
}

// CanRegenerate reports whether the regenerate control is enabled.
func (s DetailSnapshot) CanRegenerate() bool {
	return !s.Closed && s.Quotation.Status.IsOpen() && s.State.IsIdle()
}

// CanConfirm reports whether the confirm control is enabled.
func (s DetailSnapshot) CanConfirm() bool {
	return s.CanRegenerate() && s.HasSelection
}

// EmptyState reports whether the "no proposals" panel replaces the table.
func (s DetailSnapshot) EmptyState() bool {
	return len(s.Proposals) == 0
}

// Selected returns the selected proposal, if any.
func (s DetailSnapshot) Selected() (entities.Proposal, bool) {
	if !s.HasSelection {
		return entities.Proposal{}, false
	}
	return findProposal(s.Proposals, s.SelectedID)
}

// InitialSelection picks the first proposal flagged as best price by the
// backend, else the first proposal, else nothing.
func InitialSelection(proposals []entities.Proposal) (int64, bool) {
	for _, p := range proposals {
		if p.BestPrice {
			return p.ID, true
		}
	}
	if len(proposals) > 0 {
		return proposals[0].ID, true
	}
	return 0, false
}

// EstimatedTotal is unit price times requested quantity. Missing or
// non-finite operands count as zero.
func EstimatedTotal(selected *entities.Proposal, quantity float64) float64 {
	if selected == nil {
		return 0
	}
	total := finiteOrZero(selected.UnitPrice) * finiteOrZero(quantity)
	return finiteOrZero(total)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func findProposal(proposals []entities.Proposal, id int64) (entities.Proposal, bool) {
	for _, p := range proposals {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Proposal{}, false
}

// DetailView holds the state of one open quotation detail screen.
//
// mu is never held across a backend call. A mutating action moves state away
// from Idle in begin and back in settle; gen identifies the action so a late
// settle cannot reset a newer one.
type DetailView struct {
	mu sync.Mutex

	id           string
	quotation    entities.Quotation
	proposals    []entities.Proposal
	selectedID   int64
	hasSelection bool

	state    entities.ActionState
	gen      uint64
	cancel   context.CancelFunc
	closed   bool
	lastUsed time.Time
}

type pendingAction struct {
	ctx       context.Context
	gen       uint64
	quotation entities.Quotation
	selected  entities.Proposal
}

func newDetailView(id string, q entities.Quotation, proposals []entities.Proposal, now time.Time) *DetailView {
	v := &DetailView{id: id, quotation: q, state: entities.ActionStateIdle, lastUsed: now}
	v.replaceProposalsLocked(proposals)
	return v
}

// replaceProposalsLocked adopts the backend's set verbatim and re-derives the selection.
func (v *DetailView) replaceProposalsLocked(proposals []entities.Proposal) {
	v.proposals = append([]entities.Proposal(nil), proposals...)
	v.selectedID, v.hasSelection = InitialSelection(v.proposals)
}

func (v *DetailView) snapshotLocked() DetailSnapshot {
	s := DetailSnapshot{
		ViewID:       v.id,
		Quotation:    v.quotation,
		Proposals:    append([]entities.Proposal{}, v.proposals...),
		SelectedID:   v.selectedID,
		HasSelection: v.hasSelection,
		State:        v.state,
		Closed:       v.closed,
	}
	if p, ok := s.Selected(); ok {
		s.Total = EstimatedTotal(&p, v.quotation.Quantity)
	}
	return s
}

func (v *DetailView) snapshot(now time.Time) (DetailSnapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return DetailSnapshot{}, ErrViewNotFound
	}
	v.lastUsed = now
	return v.snapshotLocked(), nil
}

func (v *DetailView) selectProposal(proposalID int64, now time.Time) (DetailSnapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return DetailSnapshot{}, ErrViewNotFound
	}
	if _, ok := findProposal(v.proposals, proposalID); !ok {
		return DetailSnapshot{}, ErrProposalNotFound
	}
	v.selectedID = proposalID
	v.hasSelection = true
	v.lastUsed = now
	return v.snapshotLocked(), nil
}

// begin moves the view into a busy state. require runs under the lock after
// the generic checks and may veto the action.
func (v *DetailView) begin(ctx context.Context, state entities.ActionState, require func(v *DetailView) error) (pendingAction, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch {
	case v.closed:
		return pendingAction{}, ErrViewNotFound
	case !v.quotation.Status.IsOpen():
		return pendingAction{}, ErrQuotationNotOpen
	case !v.state.IsIdle():
		return pendingAction{}, ErrActionInProgress
	}
	if require != nil {
		if err := require(v); err != nil {
			return pendingAction{}, err
		}
	}

	callCtx, cancel := context.WithCancel(ctx)
	v.gen++
	v.state = state
	v.cancel = cancel

	p := pendingAction{ctx: callCtx, gen: v.gen, quotation: v.quotation}
	if v.hasSelection {
		p.selected, _ = findProposal(v.proposals, v.selectedID)
	}
	return p, nil
}

// settle returns the view to Idle and applies the action's result, but only
// if gen still names the in-flight action. Safe to call more than once.
func (v *DetailView) settle(gen uint64, now time.Time, apply func(v *DetailView)) DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.gen == gen && !v.state.IsIdle() {
		if apply != nil && !v.closed {
			apply(v)
		}
		v.state = entities.ActionStateIdle
		if v.cancel != nil {
			v.cancel()
			v.cancel = nil
		}
		v.lastUsed = now
	}
	return v.snapshotLocked()
}

// close marks the view closed and aborts any in-flight request.
func (v *DetailView) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *DetailView) idleSince(now time.Time, ttl time.Duration) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.IsIdle() && now.Sub(v.lastUsed) > ttl
}
