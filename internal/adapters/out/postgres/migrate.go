package postgres

import (
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/adapters/out/postgres/transferrepo"

	"gorm.io/gorm"
)

// Migrate creates or extends the tables behind the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryEntryDTO{},
		&transferrepo.TransferDTO{},
	)
}
