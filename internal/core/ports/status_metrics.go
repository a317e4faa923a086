package ports

import (
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"
)

// StatusMetrics receives lifecycle events after they were committed.
type StatusMetrics interface {
	RecordTransition(status shipment.Status)
	RecordShipmentCreated(mode schedule.Mode)
}
