package interfaces

import (
	"context"

	"brushworks/internal/domain/entities"
)

// IQuoteRepository persists computed quotes for retrieval and audit.
type IQuoteRepository interface {
	Create(ctx context.Context, record entities.QuoteRecord) (entities.QuoteRecord, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRecord, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.QuoteRecord, error)
}
