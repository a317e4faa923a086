package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrSetShipmentStatusCommandIsNotConstructed = errors.New(
	"SetShipmentStatusCommand must be created via NewSetShipmentStatusCommand constructor",
)

// SetShipmentStatusCommand moves a shipment to a new lifecycle status.
// The raw status string is checked against the closed status set here, so an
// unknown value never reaches the database.
type SetShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

func NewSetShipmentStatusCommand(actor kernel.Actor, shipmentID kernel.UUID, status string) (SetShipmentStatusCommand, error) {
	cmd := SetShipmentStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
	); err != nil {
		return SetShipmentStatusCommand{}, err
	}

	return cmd, nil
}

func (c SetShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetShipmentStatusCommandIsNotConstructed)
}

func (c SetShipmentStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SetShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c SetShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *SetShipmentStatusCommand) setActor(actor kernel.Actor) error {
	if actor.ID() == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}

func (c *SetShipmentStatusCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *SetShipmentStatusCommand) setStatus(raw string) error {
	status, err := shipment.ParseStatus(raw)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}
