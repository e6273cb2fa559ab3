package interfaces

import (
	"context"
	"construtora_erp/internal/domain/entities"
	"errors"
	"fmt"
)

// ErrGatewayUnavailable is returned when the ERP backend could not be reached
// or its response could not be read.
var ErrGatewayUnavailable = errors.New("erp backend unavailable")

// GatewayError is a failure reported by the ERP backend itself: a non-2xx
// response or an envelope with success=false. Message is the backend's own
// text, empty when the backend did not send one.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("erp backend error status=%d", e.Status)
	}
	return fmt.Sprintf("erp backend error status=%d: %s", e.Status, e.Message)
}

// IQuotationGateway abstracts the ERP REST API consumed by the quotation flow.
//
// The backend owns persistence, pricing comparison and the best-price flag:
//   - GET    /cotacoes/listar                         => ListQuotations()
//   - GET    /cotacoes/{id}                           => GetQuotation()
//   - GET    /cotacoes/{id}/propostas                 => ListProposals()
//   - POST   /cotacoes/{id}/regerar-propostas         => RegenerateProposals()
//   - POST   /cotacoes/propostas/{proposalId}/confirmar => ConfirmProposal()
//   - DELETE /cotacoes/deletar/{id}                   => DeleteQuotation()

type IQuotationGateway interface {
	ListQuotations(ctx context.Context) ([]entities.Quotation, error)
	GetQuotation(ctx context.Context, id int64) (entities.Quotation, error)
	ListProposals(ctx context.Context, quotationID int64) ([]entities.Proposal, error)
	RegenerateProposals(ctx context.Context, quotationID int64) ([]entities.Proposal, error)
	ConfirmProposal(ctx context.Context, proposalID int64) error
	DeleteQuotation(ctx context.Context, id int64) error
}
