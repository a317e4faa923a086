package shipment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus is returned for any value outside the seven statuses.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrTerminalStateViolation is returned when a delivered or cancelled shipment is changed.
	ErrTerminalStateViolation = errors.New("shipment is in a terminal status")

	// ErrStatusRegression is returned for backward or repeated moves under TransitionForwardOnly.
	ErrStatusRegression = errors.New("status transition is not forward")
)

// Status is the lifecycle state of a shipment. The string values are shared
// with existing consumers and must not change.
type Status string

const (
	Pending   Status = "Pendiente"
	Collected Status = "Recogido"
	InTransit Status = "En tránsito"
	InCustoms Status = "En Aduanas"
	Arrived   Status = "Llegado a destino"
	Delivered Status = "Entregado"
	Cancelled Status = "Cancelado"
)

// TransitionPolicy selects how strictly SetStatus orders non-terminal moves.
type TransitionPolicy int

const (
	// TransitionForwardOnly allows moving ahead along the chain (skips allowed) or cancelling.
	TransitionForwardOnly TransitionPolicy = iota
	// TransitionOverride allows any move between statuses while the shipment is not terminal.
	TransitionOverride
)

// forward chain order; Cancelled sits outside it.
var chainRank = map[Status]int{
	Pending:   1,
	Collected: 2,
	InTransit: 3,
	InCustoms: 4,
	Arrived:   5,
	Delivered: 6,
}

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{Pending, Collected, InTransit, InCustoms, Arrived, Delivered, Cancelled}
}

// ParseStatus matches the literal form exactly.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if _, ok := chainRank[s]; ok || s == Cancelled {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks a move from s to next under policy.
// The checks run in order: next is valid, s is not terminal, policy allows the move.
func (s Status) CanTransitionTo(next Status, policy TransitionPolicy) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrTerminalStateViolation, s, next)
	}
	if next == Cancelled || policy == TransitionOverride {
		return nil
	}
	if chainRank[next] <= chainRank[s] {
		return fmt.Errorf("%w: %s -> %s", ErrStatusRegression, s, next)
	}
	return nil
}
