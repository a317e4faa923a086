package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

const maxCodeAttempts = 5

var (
	ErrActorIsRequired = errors.New("actor is required")

	// ErrCodeSpaceExhausted is returned when every generated code collided.
	ErrCodeSpaceExhausted = fmt.Errorf("no free code after %d attempts", maxCodeAttempts)
)

// CreateShipmentCommandHandler stores a new shipment in Pendiente under a
// fresh tracking code. A code collision rolls the attempt back and retries
// with a new code in a new transaction.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	metrics    ports.StatusMetrics
	now        func() time.Time
	newCode    func() (kernel.TrackingCode, error)
}

// NewCreateShipmentCommandHandler wires the handler. A nil clock uses
// time.Now and a nil generator uses kernel.NewTrackingCode.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	metrics ports.StatusMetrics,
	now func() time.Time,
	newCode func() (kernel.TrackingCode, error),
) CreateShipmentCommandHandler {
	if now == nil {
		now = time.Now
	}
	if newCode == nil {
		newCode = kernel.NewTrackingCode
	}
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
		now:        now,
		newCode:    newCode,
	}
}

// Handle returns the tracking code assigned to the new shipment.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (kernel.TrackingCode, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingCode{}, err
	}
	if !cmd.Actor().IsElevated() {
		return kernel.TrackingCode{}, services.ErrActorNotPrivileged
	}

	createdAt := h.now()
	for range maxCodeAttempts {
		code, err := h.newCode()
		if err != nil {
			return kernel.TrackingCode{}, err
		}

		s, err := shipment.NewShipment(cmd.ShipmentID(), code, cmd.Details(), createdAt, cmd.Actor().ID())
		if err != nil {
			return kernel.TrackingCode{}, err
		}

		err = h.store(ctx, s)
		if errors.Is(err, shipment.ErrTrackingCodeTaken) {
			continue
		}
		if err != nil {
			return kernel.TrackingCode{}, err
		}

		h.metrics.RecordShipmentCreated(s.Details().Mode)
		return code, nil
	}

	return kernel.TrackingCode{}, ErrCodeSpaceExhausted
}

func (h CreateShipmentCommandHandler) store(ctx context.Context, s *shipment.Shipment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
