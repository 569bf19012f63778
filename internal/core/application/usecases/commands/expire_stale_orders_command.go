package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand represents a sweep that removes pre-orders stuck
// in the created status for longer than the time-to-live.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire stale pre-orders.
func NewExpireStaleOrdersCommand(ttl time.Duration) (ExpireStaleOrdersCommand, error) {
	if ttl <= 0 {
		return ExpireStaleOrdersCommand{}, errs.NewValueIsInvalidError("ttl")
	}

	return ExpireStaleOrdersCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// TTL returns how long a pre-order may stay in the created status.
func (c ExpireStaleOrdersCommand) TTL() time.Duration {
	return c.ttl
}
