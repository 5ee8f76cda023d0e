package repositories

import (
	"context"
)

// UnitOfWork runs a group of repository calls in one store transaction.
// Repositories pick the transaction up from the context passed to fn.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
