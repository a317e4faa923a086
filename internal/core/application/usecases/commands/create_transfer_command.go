package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transfer"
	"shipping/internal/pkg/guard"
)

var ErrCreateTransferCommandIsNotConstructed = errors.New(
	"CreateTransferCommand must be created via NewCreateTransferCommand constructor",
)

// CreateTransferCommand records a money remittance accepted at the counter.
type CreateTransferCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	transferID kernel.UUID
	parties    transfer.Parties
	amount     kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateTransferCommand(
	actor kernel.Actor,
	transferID kernel.UUID,
	parties transfer.Parties,
	amount kernel.Money,
) (CreateTransferCommand, error) {
	cmd := CreateTransferCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTransferID(transferID),
	); err != nil {
		return CreateTransferCommand{}, err
	}

	cmd.parties = parties
	cmd.amount = amount
	return cmd, nil
}

func (c CreateTransferCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransferCommandIsNotConstructed)
}

func (c CreateTransferCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateTransferCommand) TransferID() kernel.UUID {
	return c.transferID
}

func (c CreateTransferCommand) Parties() transfer.Parties {
	return c.parties
}

func (c CreateTransferCommand) Amount() kernel.Money {
	return c.amount
}

func (c *CreateTransferCommand) setActor(actor kernel.Actor) error {
	if actor.ID() == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}

func (c *CreateTransferCommand) setTransferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.transferID = id
	return nil
}
