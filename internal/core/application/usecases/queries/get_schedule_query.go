package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/pkg/guard"
)

var ErrGetScheduleQueryIsNotConstructed = errors.New(
	"GetScheduleQuery must be created via NewGetScheduleQuery constructor",
)

// GetScheduleQuery returns the calendar as edited plus the departures it resolves to.
type GetScheduleQuery struct {
	guard guard.ConstructorGuard
}

func NewGetScheduleQuery() GetScheduleQuery {
	return GetScheduleQuery{guard: guard.NewConstructorGuard()}
}

func (q GetScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduleQueryIsNotConstructed)
}

type GetScheduleQueryResponse struct {
	Settings schedule.Settings
	Upcoming []UpcomingWindow
}

type UpcomingWindow struct {
	Date  time.Time
	Mode  schedule.Mode
	Label string
}
