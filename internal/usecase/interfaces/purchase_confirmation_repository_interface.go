package interfaces

import (
	"context"
	"construtora_erp/internal/domain/entities"
)

// IPurchaseConfirmationRepository abstracts DynamoDB persistence for PurchaseConfirmation.

type IPurchaseConfirmationRepository interface {
	Create(ctx context.Context, c entities.PurchaseConfirmation) (entities.PurchaseConfirmation, error)
	ListByQuotationID(ctx context.Context, quotationID int64) ([]entities.PurchaseConfirmation, error)
}
