package ports

import (
	"context"

	"ordering/internal/core/domain/model/menu"
)

// CatalogReader supplies the point-in-time catalog snapshot one validation
// pass prices against. The engine reads the snapshot exactly once per pass,
// so a catalog change after the read affects only later orders.
type CatalogReader interface {
	Snapshot(ctx context.Context) (menu.Snapshot, error)
}
