// Package ports defines the contracts between the shipping domain and the
// infrastructure that stores, caches and measures it.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentFilter narrows List. The zero value returns only shipments that
// are still moving (non-terminal).
type ShipmentFilter struct {
	IncludeTerminal bool
}

// ShipmentRepository defines the persistence contract for shipment aggregates,
// including their full status history.
type ShipmentRepository interface {
	// Add persists a new shipment. Returns shipment.ErrTrackingCodeTaken when
	// the tracking code is already used.
	Add(ctx context.Context, s *shipment.Shipment) error

	// Update persists history entries appended since the shipment was loaded.
	// Existing entries are never rewritten.
	Update(ctx context.Context, s *shipment.Shipment) error

	// GetForUpdate retrieves a shipment and locks it until the enclosing
	// transaction ends, so concurrent status changes serialize.
	//
	// Example:
	//   uow.Begin(ctx)
	//   s, err := uow.ShipmentRepository().GetForUpdate(ctx, id)
	//   ...
	//   uow.ShipmentRepository().Update(ctx, s)
	//   uow.Commit(ctx)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingCode is the public lookup path.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error)

	// List returns shipments ordered by creation time, oldest first.
	List(ctx context.Context, filter ShipmentFilter) ([]*shipment.Shipment, error)
}
