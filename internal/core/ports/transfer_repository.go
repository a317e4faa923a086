package ports

import (
	"context"

	"shipping/internal/core/domain/model/transfer"
)

// TransferRepository stores money transfers. Transfers are immutable once recorded.
type TransferRepository interface {
	Add(ctx context.Context, t *transfer.Transfer) error

	// List returns every transfer, oldest first.
	List(ctx context.Context) ([]*transfer.Transfer, error)
}
