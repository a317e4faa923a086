package commands

import (
	"context"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// SetShipmentStatusCommandHandler applies a status change inside one
// transaction. The shipment row is locked on read, so concurrent changes to
// the same shipment run one after the other and both history entries survive.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, shipment.ErrInvalidStatus):
//	case errors.Is(err, shipment.ErrTerminalStateViolation):
//	case errors.Is(err, errs.ErrObjectNotFound):
//	}
type SetShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	engine     services.StatusEngine
	metrics    ports.StatusMetrics
}

func NewSetShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	engine services.StatusEngine,
	metrics ports.StatusMetrics,
) SetShipmentStatusCommandHandler {
	return SetShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		metrics:    metrics,
	}
}

func (h SetShipmentStatusCommandHandler) Handle(ctx context.Context, cmd SetShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.engine.Authorize(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = h.engine.SetStatus(s, cmd.Status(), cmd.Actor()); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.RecordTransition(cmd.Status())
	return nil
}
