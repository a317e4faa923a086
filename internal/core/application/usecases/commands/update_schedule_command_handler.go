package commands

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// UpdateScheduleCommandHandler writes the calendar to the settings store.
// Bucket views pick the change up on their next read.
type UpdateScheduleCommandHandler struct {
	store  ports.ScheduleStore
	now    func() time.Time
	logger *slog.Logger
}

func NewUpdateScheduleCommandHandler(store ports.ScheduleStore, now func() time.Time, logger *slog.Logger) UpdateScheduleCommandHandler {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateScheduleCommandHandler{
		store:  store,
		now:    now,
		logger: logger.With("component", "update_schedule"),
	}
}

func (h UpdateScheduleCommandHandler) Handle(ctx context.Context, cmd UpdateScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Actor().IsElevated() {
		return services.ErrActorNotPrivileged
	}

	settings := schedule.Settings{
		Windows:   cmd.Windows(),
		Blocks:    cmd.Blocks(),
		UpdatedAt: h.now(),
	}
	if err := h.store.Save(ctx, settings); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "schedule updated",
		"actor_id", cmd.Actor().ID(),
		"windows", len(settings.Windows),
		"blocks", len(settings.Blocks),
	)
	return nil
}
