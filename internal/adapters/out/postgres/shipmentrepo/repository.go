package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/adapters/out/postgres/pgerr"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", shipment.ErrTrackingCodeTaken, dto.TrackingCode)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update stores the current status and inserts the history entries that are
// not in the table yet. Stored entries are never touched.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
	}

	var stored int64
	if err := db.Model(&HistoryEntryDTO{}).Where("shipment_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}
	if int(stored) > len(dto.History) {
		return errs.NewVersionIsInvalidError("history",
			fmt.Errorf("store has %d entries, aggregate has %d", stored, len(dto.History)))
	}

	if appended := dto.History[stored:]; len(appended) > 0 {
		if err := db.Create(&appended).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForUpdate takes a row lock (SELECT ... FOR UPDATE) held until the
// surrounding transaction ends. Outside a transaction the lock is released
// immediately.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormShipmentRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).
		Preload("History", orderBySeq).
		First(&dto, "tracking_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) List(ctx context.Context, filter ports.ShipmentFilter) ([]*shipment.Shipment, error) {
	query := r.db.WithContext(ctx).Preload("History", orderBySeq).Order("created_at, id")
	if !filter.IncludeTerminal {
		query = query.Where("status NOT IN ?", terminalStatuses())
	}

	var dtos []ShipmentDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

func (r *GormShipmentRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := db.WithContext(ctx).Preload("History", orderBySeq).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func orderBySeq(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}

func terminalStatuses() []string {
	var out []string
	for _, s := range shipment.Statuses() {
		if s.IsTerminal() {
			out = append(out, s.String())
		}
	}
	return out
}
