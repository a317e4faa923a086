package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/schedule"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO keeps the current status next to the history so List can
// filter terminal shipments without reading the timeline.
type ShipmentDTO struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey"`
	TrackingCode      string            `gorm:"type:varchar(8);not null;uniqueIndex"`
	SenderName        string            `gorm:"type:varchar(255);not null"`
	RecipientName     string            `gorm:"type:varchar(255);not null"`
	OriginRegion      string            `gorm:"type:varchar(255);not null"`
	DestinationRegion string            `gorm:"type:varchar(255);not null"`
	WeightKg          float64           `gorm:"type:double precision;not null"`
	DeclaredPrice     MoneyDTO          `gorm:"embedded;embeddedPrefix:declared_price_"`
	Mode              string            `gorm:"type:varchar(16);not null"`
	Status            string            `gorm:"type:varchar(32);not null;index"`
	CreatedAt         time.Time         `gorm:"type:timestamptz;not null;index"`
	History           []HistoryEntryDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type MoneyDTO struct {
	Amount   int64  `gorm:"type:bigint;not null"`
	Currency string `gorm:"type:char(3);not null"`
}

// HistoryEntryDTO is one row of the append-only timeline. Seq is the
// position in the timeline and never changes once written.
type HistoryEntryDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	Status     string    `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time `gorm:"type:timestamptz;not null"`
	ActorID    string    `gorm:"type:varchar(255);not null"`
}

func (HistoryEntryDTO) TableName() string {
	return "shipment_history"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	id := s.ID().Bytes()
	d := s.Details()

	history := make([]HistoryEntryDTO, 0, len(s.History()))
	for i, e := range s.History() {
		history = append(history, HistoryEntryDTO{
			ShipmentID: id,
			Seq:        i,
			Status:     e.Status.String(),
			OccurredAt: e.Timestamp,
			ActorID:    e.ActorID,
		})
	}

	return ShipmentDTO{
		ID:                id,
		TrackingCode:      s.TrackingCode().String(),
		SenderName:        d.SenderName,
		RecipientName:     d.RecipientName,
		OriginRegion:      d.OriginRegion,
		DestinationRegion: d.DestinationRegion,
		WeightKg:          d.WeightKg,
		DeclaredPrice: MoneyDTO{
			Amount:   d.DeclaredPrice.Amount(),
			Currency: d.DeclaredPrice.Currency(),
		},
		Mode:      d.Mode.String(),
		Status:    s.Status().String(),
		CreatedAt: s.CreatedAt(),
		History:   history,
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.ParseTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.DeclaredPrice.Amount, dto.DeclaredPrice.Currency)
	if err != nil {
		return nil, err
	}

	history := make([]shipment.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		history = append(history, shipment.HistoryEntry{
			Status:    shipment.Status(h.Status),
			Timestamp: h.OccurredAt,
			ActorID:   h.ActorID,
		})
	}

	return shipment.RestoreShipment(id, code, shipment.Details{
		SenderName:        dto.SenderName,
		RecipientName:     dto.RecipientName,
		OriginRegion:      dto.OriginRegion,
		DestinationRegion: dto.DestinationRegion,
		WeightKg:          dto.WeightKg,
		DeclaredPrice:     price,
		Mode:              schedule.Mode(dto.Mode),
	}, dto.CreatedAt, history)
}
