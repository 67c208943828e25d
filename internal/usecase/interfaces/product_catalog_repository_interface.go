package interfaces

import (
	"context"

	"brushworks/internal/domain/entities"
)

// IProductCatalogRepository resolves catalog products for a quote's
// selections in one batch, yielding the snapshot the engine prices against.
type IProductCatalogRepository interface {
	GetProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
}
