package queries

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
)

type TrackingLookupQueryHandler struct {
	shipments ShipmentReader
	engine    services.StatusEngine
}

func NewTrackingLookupQueryHandler(shipments ShipmentReader, engine services.StatusEngine) TrackingLookupQueryHandler {
	return TrackingLookupQueryHandler{shipments: shipments, engine: engine}
}

// Handle returns errs.ErrObjectNotFound when no shipment carries the code.
func (h TrackingLookupQueryHandler) Handle(ctx context.Context, query TrackingLookupQuery) (TrackingLookupResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackingLookupResponse{}, err
	}

	s, err := h.shipments.GetByTrackingCode(ctx, query.Code())
	if err != nil {
		return TrackingLookupResponse{}, err
	}

	history := s.History()
	events := make([]TrackingEvent, 0, len(history))
	for _, e := range history {
		events = append(events, TrackingEvent{Status: e.Status, Timestamp: e.Timestamp})
	}

	milestones := make([]Milestone, 0, len(shipment.Statuses()))
	for _, status := range shipment.Statuses() {
		m := Milestone{Status: status}
		if at, ok := h.engine.LastTimestampFor(s, status); ok {
			m.ReachedAt = &at
		}
		milestones = append(milestones, m)
	}

	d := s.Details()
	return TrackingLookupResponse{
		TrackingCode:      s.TrackingCode().String(),
		Status:            h.engine.CurrentStatus(s),
		OriginRegion:      d.OriginRegion,
		DestinationRegion: d.DestinationRegion,
		Mode:              d.Mode,
		CreatedAt:         s.CreatedAt(),
		History:           events,
		Milestones:        milestones,
	}, nil
}
