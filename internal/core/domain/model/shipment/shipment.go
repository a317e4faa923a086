package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned for shipments not built by NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrTrackingCodeTaken is returned by stores when a generated code collides with an existing one.
	ErrTrackingCodeTaken = errors.New("tracking code already assigned")
)

// HistoryEntry is one immutable step of the shipment timeline.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
	ActorID   string
}

// Details are the descriptive fields captured at intake.
type Details struct {
	SenderName        string
	RecipientName     string
	OriginRegion      string
	DestinationRegion string
	WeightKg          float64
	DeclaredPrice     kernel.Money
	Mode              schedule.Mode
}

// Shipment is the aggregate root for a package in transit.
//
// Invariants:
//   - history is never empty and its timestamps never decrease
//   - Status() is the status of the last history entry
//   - the tracking code never changes after construction
type Shipment struct {
	id           kernel.UUID
	trackingCode kernel.TrackingCode
	createdAt    time.Time
	details      Details
	history      []HistoryEntry

	isConstructed bool
}

// NewShipment registers a package at intake in Pendiente, with one history
// entry stamped at createdAt.
func NewShipment(
	id kernel.UUID,
	code kernel.TrackingCode,
	details Details,
	createdAt time.Time,
	actorID string,
) (*Shipment, error) {
	s := &Shipment{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingCode(code),
		s.setDetails(details),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	s.history = []HistoryEntry{{Status: Pending, Timestamp: createdAt, ActorID: actorID}}
	return s, nil
}

// RestoreShipment rebuilds a shipment read from storage and re-checks the history invariants.
func RestoreShipment(
	id kernel.UUID,
	code kernel.TrackingCode,
	details Details,
	createdAt time.Time,
	history []HistoryEntry,
) (*Shipment, error) {
	s := &Shipment{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingCode(code),
		s.setDetails(details),
		s.setCreatedAt(createdAt),
		s.setHistory(history),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) TrackingCode() kernel.TrackingCode {
	return s.trackingCode
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipment) Details() Details {
	return s.details
}

// Status returns the status of the last history entry.
func (s *Shipment) Status() Status {
	if len(s.history) == 0 {
		return ""
	}
	return s.history[len(s.history)-1].Status
}

// History returns a copy of the timeline, oldest first.
func (s *Shipment) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// LastTimestampFor returns when status was most recently entered.
// ok is false when the shipment never reached it.
func (s *Shipment) LastTimestampFor(status Status) (ts time.Time, ok bool) {
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Status == status {
			return s.history[i].Timestamp, true
		}
	}
	return time.Time{}, false
}

// SearchFields are the texts matched by operations search.
func (s *Shipment) SearchFields() []string {
	return []string{
		s.trackingCode.String(),
		s.details.SenderName,
		s.details.RecipientName,
		s.details.OriginRegion,
		s.details.DestinationRegion,
	}
}

// SetStatus appends a history entry for next. at is clamped to the previous
// entry so the timeline never goes backwards. On error nothing changes.
func (s *Shipment) SetStatus(next Status, at time.Time, actorID string, policy TransitionPolicy) error {
	if err := s.Status().CanTransitionTo(next, policy); err != nil {
		return err
	}

	if last := s.history[len(s.history)-1].Timestamp; at.Before(last) {
		at = last
	}

	s.history = append(s.history, HistoryEntry{Status: next, Timestamp: at, ActorID: actorID})
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	s.trackingCode = code
	return nil
}

func (s *Shipment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}

func (s *Shipment) setDetails(d Details) error {
	var all []error
	if strings.TrimSpace(d.SenderName) == "" {
		all = append(all, errs.NewValueIsRequiredError("senderName"))
	}
	if strings.TrimSpace(d.RecipientName) == "" {
		all = append(all, errs.NewValueIsRequiredError("recipientName"))
	}
	if strings.TrimSpace(d.OriginRegion) == "" {
		all = append(all, errs.NewValueIsRequiredError("originRegion"))
	}
	if strings.TrimSpace(d.DestinationRegion) == "" {
		all = append(all, errs.NewValueIsRequiredError("destinationRegion"))
	}
	if d.WeightKg <= 0 {
		all = append(all, errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not greater than 0", d.WeightKg)))
	}
	if err := d.DeclaredPrice.Validate(); err != nil {
		all = append(all, err)
	}
	if err := d.Mode.Validate(); err != nil {
		all = append(all, err)
	}
	if err := errors.Join(all...); err != nil {
		return err
	}
	s.details = d
	return nil
}

func (s *Shipment) setHistory(history []HistoryEntry) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("history")
	}
	for i, entry := range history {
		if err := entry.Status.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("history[%d].status", i), err)
		}
		if i > 0 && entry.Timestamp.Before(history[i-1].Timestamp) {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("history[%d].timestamp", i),
				fmt.Errorf("%s is before %s", entry.Timestamp, history[i-1].Timestamp),
			)
		}
	}
	s.history = make([]HistoryEntry, len(history))
	copy(s.history, history)
	return nil
}
