package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrTrackingLookupQueryIsNotConstructed = errors.New(
	"TrackingLookupQuery must be created via NewTrackingLookupQuery constructor",
)

// TrackingLookupQuery is the public, unauthenticated lookup by tracking code.
type TrackingLookupQuery struct {
	code kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackingLookupQuery normalizes user input (" bb-7k2qx ") before lookup.
func NewTrackingLookupQuery(rawCode string) (TrackingLookupQuery, error) {
	code, err := kernel.ParseTrackingCode(rawCode)
	if err != nil {
		return TrackingLookupQuery{}, err
	}
	return TrackingLookupQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackingLookupQuery) Validate() error {
	return q.guard.Validate(ErrTrackingLookupQueryIsNotConstructed)
}

func (q TrackingLookupQuery) Code() kernel.TrackingCode {
	return q.code
}

// TrackingLookupResponse omits names and actors; it is shown to anyone holding the code.
type TrackingLookupResponse struct {
	TrackingCode      string
	Status            shipment.Status
	OriginRegion      string
	DestinationRegion string
	Mode              schedule.Mode
	CreatedAt         time.Time
	History           []TrackingEvent
	Milestones        []Milestone
}

type TrackingEvent struct {
	Status    shipment.Status
	Timestamp time.Time
}

// Milestone is the last time a status was entered. ReachedAt is nil when it never was.
type Milestone struct {
	Status    shipment.Status
	ReachedAt *time.Time
}
