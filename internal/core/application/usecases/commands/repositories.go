// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"ordering/internal/core/ports"
)

// Clock supplies the current time, already localized to the restaurant's
// timezone. Injected so the pricing engine stays a pure, testable function.
type Clock interface {
	Now() time.Time
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SequencerFactory provides access to the daily sequencer within a
	// transaction, so the handed-out number commits with the order it was
	// handed to.
	SequencerFactory interface {
		DailySequencer() ports.DailySequencer
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW manages transactions for operations that persist a new
	// order together with its freshly sequenced daily number.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		SequencerFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}
)
