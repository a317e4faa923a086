package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentsGroupedByBucketQueryIsNotConstructed = errors.New(
	"GetShipmentsGroupedByBucketQuery must be created via NewGetShipmentsGroupedByBucketQuery constructor",
)

// GetShipmentsGroupedByBucketQuery asks for the operations folder view.
//
// Example:
//
//	query := NewGetShipmentsGroupedByBucketQuery(actor, "malabo", false)
//	buckets, err := handler.Handle(ctx, query)
//	for _, b := range buckets {
//	    fmt.Printf("%s: %d\n", b.Key, len(b.Shipments))
//	}
type GetShipmentsGroupedByBucketQuery struct {
	actor           kernel.Actor
	search          string
	includeTerminal bool

	guard guard.ConstructorGuard
}

// NewGetShipmentsGroupedByBucketQuery builds the query. A blank search
// matches everything; includeTerminal also lists delivered and cancelled shipments.
func NewGetShipmentsGroupedByBucketQuery(actor kernel.Actor, search string, includeTerminal bool) GetShipmentsGroupedByBucketQuery {
	return GetShipmentsGroupedByBucketQuery{
		actor:           actor,
		search:          search,
		includeTerminal: includeTerminal,
		guard:           guard.NewConstructorGuard(),
	}
}

func (q GetShipmentsGroupedByBucketQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsGroupedByBucketQueryIsNotConstructed)
}

// ShipmentBucketResponse is one folder. WindowDate is nil for the fallback folder.
type ShipmentBucketResponse struct {
	Key        string
	WindowDate *time.Time
	Shipments  []ShipmentSummary
}

// ShipmentSummary is a shipment row of the operations view.
type ShipmentSummary struct {
	ID                kernel.UUID
	TrackingCode      string
	Status            shipment.Status
	SenderName        string
	RecipientName     string
	OriginRegion      string
	DestinationRegion string
	WeightKg          float64
	DeclaredPrice     kernel.Money
	Mode              schedule.Mode
	CreatedAt         time.Time
}

func summarize(s *shipment.Shipment) ShipmentSummary {
	d := s.Details()
	return ShipmentSummary{
		ID:                s.ID(),
		TrackingCode:      s.TrackingCode().String(),
		Status:            s.Status(),
		SenderName:        d.SenderName,
		RecipientName:     d.RecipientName,
		OriginRegion:      d.OriginRegion,
		DestinationRegion: d.DestinationRegion,
		WeightKg:          d.WeightKg,
		DeclaredPrice:     d.DeclaredPrice,
		Mode:              d.Mode,
		CreatedAt:         s.CreatedAt(),
	}
}
