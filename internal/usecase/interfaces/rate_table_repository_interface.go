package interfaces

import (
	"context"

	"brushworks/internal/domain/entities"
)

// IRateTableRepository supplies the tenant-scoped rate table snapshot.
//
// One call returns one consistent, versioned snapshot; a quote computation
// never re-reads the table mid-flight, so concurrent rate edits cannot leak
// into a running computation.
type IRateTableRepository interface {
	GetByTenantID(ctx context.Context, tenantID string) (entities.RateTable, error)
}
