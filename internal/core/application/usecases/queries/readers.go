// Package queries contains read operations. Query handlers never open a
// transaction and never mutate state.
package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/transfer"
	"shipping/internal/core/ports"
)

type (
	// ShipmentReader is the read side of ports.ShipmentRepository.
	ShipmentReader interface {
		List(ctx context.Context, filter ports.ShipmentFilter) ([]*shipment.Shipment, error)
		GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error)
	}

	// TransferReader is the read side of ports.TransferRepository.
	TransferReader interface {
		List(ctx context.Context) ([]*transfer.Transfer, error)
	}
)
