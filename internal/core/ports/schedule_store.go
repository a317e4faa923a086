package ports

import (
	"context"

	"shipping/internal/core/domain/model/schedule"
)

// ScheduleStore holds the single schedule settings document edited by
// operations. It is read on every bucket computation and never cached by callers.
type ScheduleStore interface {
	// Load returns the current settings. A store that was never written
	// returns empty settings and no error.
	Load(ctx context.Context) (schedule.Settings, error)

	// Save replaces the settings document.
	Save(ctx context.Context, settings schedule.Settings) error
}
