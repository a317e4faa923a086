package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand registers a package at intake.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(actor, kernel.NewUUID(), shipment.Details{
//	    SenderName:        "María Obiang",
//	    RecipientName:     "Pedro Nsue",
//	    OriginRegion:      "Madrid",
//	    DestinationRegion: "Malabo",
//	    WeightKg:          12.5,
//	    DeclaredPrice:     price,
//	    Mode:              schedule.Air,
//	})
//	code, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	shipmentID kernel.UUID
	details    shipment.Details

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand checks the identifiers. Details are validated by the
// aggregate so the rules live in one place.
func NewCreateShipmentCommand(actor kernel.Actor, shipmentID kernel.UUID, details shipment.Details) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.details = details
	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c *CreateShipmentCommand) setActor(actor kernel.Actor) error {
	if actor.ID() == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}
