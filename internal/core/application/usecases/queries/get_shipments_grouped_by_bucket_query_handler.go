package queries

import (
	"context"

	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// GetShipmentsGroupedByBucketQueryHandler builds the folder view from the
// current shipments and the current calendar. Both are read on every call,
// so a calendar edit moves shipments between folders on the next request.
type GetShipmentsGroupedByBucketQueryHandler struct {
	shipments ShipmentReader
	store     ports.ScheduleStore
	resolver  *schedule.Resolver
}

func NewGetShipmentsGroupedByBucketQueryHandler(
	shipments ShipmentReader,
	store ports.ScheduleStore,
	resolver *schedule.Resolver,
) GetShipmentsGroupedByBucketQueryHandler {
	return GetShipmentsGroupedByBucketQueryHandler{
		shipments: shipments,
		store:     store,
		resolver:  resolver,
	}
}

func (h GetShipmentsGroupedByBucketQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsGroupedByBucketQuery,
) ([]ShipmentBucketResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.actor.IsElevated() {
		return nil, services.ErrActorNotPrivileged
	}

	settings, err := h.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	windows := h.resolver.Resolve(settings.ExplicitDates(), settings.Blocks)

	items, err := h.shipments.List(ctx, ports.ShipmentFilter{IncludeTerminal: query.includeTerminal})
	if err != nil {
		return nil, err
	}

	buckets := services.FilterBuckets(
		services.GroupByBucket(items, services.ShipmentBuckets(windows)),
		query.search,
	)

	response := make([]ShipmentBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		rows := make([]ShipmentSummary, 0, len(b.Items))
		for _, s := range b.Items {
			rows = append(rows, summarize(s))
		}
		response = append(response, ShipmentBucketResponse{Key: b.Key, WindowDate: b.WindowDate, Shipments: rows})
	}
	return response, nil
}
