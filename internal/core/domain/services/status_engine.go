package services

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ErrActorNotPrivileged is returned when a caller without an elevated role
// attempts a privileged operation.
var ErrActorNotPrivileged = errors.New("actor is not privileged")

// StatusEngine applies status changes on behalf of an actor.
//
// Example:
//
//	engine := NewStatusEngine(shipment.TransitionForwardOnly, time.Now)
//	if err := engine.SetStatus(s, shipment.Collected, actor); err != nil {
//	    switch {
//	    case errors.Is(err, shipment.ErrInvalidStatus):
//	    case errors.Is(err, shipment.ErrTerminalStateViolation):
//	    }
//	}
type StatusEngine struct {
	policy shipment.TransitionPolicy
	now    func() time.Time
}

func NewStatusEngine(policy shipment.TransitionPolicy, now func() time.Time) StatusEngine {
	if now == nil {
		now = time.Now
	}
	return StatusEngine{policy: policy, now: now}
}

// Authorize fails with ErrActorNotPrivileged unless actor holds an elevated role.
func (e StatusEngine) Authorize(actor kernel.Actor) error {
	if !actor.IsElevated() {
		return ErrActorNotPrivileged
	}
	return nil
}

// SetStatus appends next to the shipment timeline stamped with the engine clock.
// Nothing is changed when any check fails.
func (e StatusEngine) SetStatus(s *shipment.Shipment, next shipment.Status, actor kernel.Actor) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := e.Authorize(actor); err != nil {
		return err
	}
	return s.SetStatus(next, e.now(), actor.ID(), e.policy)
}

// CurrentStatus is the status of the last timeline entry.
func (e StatusEngine) CurrentStatus(s *shipment.Shipment) shipment.Status {
	return s.Status()
}

// LastTimestampFor answers "when did milestone X happen". ok is false when it never did.
func (e StatusEngine) LastTimestampFor(s *shipment.Shipment, status shipment.Status) (time.Time, bool) {
	return s.LastTimestampFor(status)
}
