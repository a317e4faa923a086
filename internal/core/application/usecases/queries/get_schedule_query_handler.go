package queries

import (
	"context"

	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/ports"
)

type GetScheduleQueryHandler struct {
	store    ports.ScheduleStore
	resolver *schedule.Resolver
}

func NewGetScheduleQueryHandler(store ports.ScheduleStore, resolver *schedule.Resolver) GetScheduleQueryHandler {
	return GetScheduleQueryHandler{store: store, resolver: resolver}
}

func (h GetScheduleQueryHandler) Handle(ctx context.Context, query GetScheduleQuery) (GetScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetScheduleQueryResponse{}, err
	}

	settings, err := h.store.Load(ctx)
	if err != nil {
		return GetScheduleQueryResponse{}, err
	}

	windows := h.resolver.Upcoming(h.resolver.ResolveWindows(settings))
	upcoming := make([]UpcomingWindow, 0, len(windows))
	for _, w := range windows {
		upcoming = append(upcoming, UpcomingWindow{Date: w.Date, Mode: w.Mode, Label: schedule.WindowLabel(w.Date)})
	}

	return GetScheduleQueryResponse{Settings: settings, Upcoming: upcoming}, nil
}
