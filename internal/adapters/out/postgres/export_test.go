package postgres

import "shipping/internal/core/domain/model/kernel"

// TrackedAggregates lists what was written since the unit of work was created.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}
