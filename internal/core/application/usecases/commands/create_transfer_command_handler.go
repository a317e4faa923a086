package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/transfer"
	"shipping/internal/core/domain/services"
)

// CreateTransferCommandHandler stores a transfer under a fresh reference,
// retrying on reference collisions like CreateShipmentCommandHandler.
type CreateTransferCommandHandler struct {
	uowFactory TransferUoWFactory
	now        func() time.Time
	newRef     func() (transfer.Reference, error)
}

func NewCreateTransferCommandHandler(
	uowFactory TransferUoWFactory,
	now func() time.Time,
	newRef func() (transfer.Reference, error),
) CreateTransferCommandHandler {
	if now == nil {
		now = time.Now
	}
	if newRef == nil {
		newRef = transfer.NewReference
	}
	return CreateTransferCommandHandler{uowFactory: uowFactory, now: now, newRef: newRef}
}

func (h CreateTransferCommandHandler) Handle(ctx context.Context, cmd CreateTransferCommand) (transfer.Reference, error) {
	if err := cmd.Validate(); err != nil {
		return transfer.Reference{}, err
	}
	if !cmd.Actor().IsElevated() {
		return transfer.Reference{}, services.ErrActorNotPrivileged
	}

	createdAt := h.now()
	for range maxCodeAttempts {
		ref, err := h.newRef()
		if err != nil {
			return transfer.Reference{}, err
		}

		t, err := transfer.NewTransfer(cmd.TransferID(), ref, cmd.Parties(), cmd.Amount(), createdAt)
		if err != nil {
			return transfer.Reference{}, err
		}

		err = h.store(ctx, t)
		if errors.Is(err, transfer.ErrReferenceTaken) {
			continue
		}
		if err != nil {
			return transfer.Reference{}, err
		}
		return ref, nil
	}

	return transfer.Reference{}, ErrCodeSpaceExhausted
}

func (h CreateTransferCommandHandler) store(ctx context.Context, t *transfer.Transfer) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TransferRepository().Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
