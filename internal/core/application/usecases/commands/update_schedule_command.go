package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/pkg/guard"
)

var ErrUpdateScheduleCommandIsNotConstructed = errors.New(
	"UpdateScheduleCommand must be created via NewUpdateScheduleCommand constructor",
)

// UpdateScheduleCommand replaces the departure calendar.
type UpdateScheduleCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	windows []schedule.Window
	blocks  []schedule.Block

	guard guard.ConstructorGuard
}

// NewUpdateScheduleCommand rejects structurally broken entries (missing dates,
// unknown modes, blank month labels). Day lists inside blocks are free text
// and are accepted as typed.
func NewUpdateScheduleCommand(actor kernel.Actor, windows []schedule.Window, blocks []schedule.Block) (UpdateScheduleCommand, error) {
	if actor.ID() == "" {
		return UpdateScheduleCommand{}, ErrActorIsRequired
	}

	settings := schedule.Settings{Windows: windows, Blocks: blocks}
	if err := settings.Validate(); err != nil {
		return UpdateScheduleCommand{}, err
	}

	return UpdateScheduleCommand{
		actor:   actor,
		windows: append([]schedule.Window(nil), windows...),
		blocks:  append([]schedule.Block(nil), blocks...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateScheduleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateScheduleCommandIsNotConstructed)
}

func (c UpdateScheduleCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateScheduleCommand) Windows() []schedule.Window {
	return c.windows
}

func (c UpdateScheduleCommand) Blocks() []schedule.Block {
	return c.blocks
}
