package transferrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transfer"

	"github.com/google/uuid"
)

type TransferDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference       string    `gorm:"type:varchar(8);not null;uniqueIndex"`
	SenderName      string    `gorm:"type:varchar(255);not null"`
	BeneficiaryName string    `gorm:"type:varchar(255);not null"`
	Origin          string    `gorm:"type:varchar(255);not null"`
	Destination     string    `gorm:"type:varchar(255);not null"`
	AmountMinor     int64     `gorm:"type:bigint;not null"`
	Currency        string    `gorm:"type:char(3);not null"`
	CreatedAt       time.Time `gorm:"type:timestamptz;not null;index"`
}

func (TransferDTO) TableName() string {
	return "transfers"
}

func fromDomain(t *transfer.Transfer) TransferDTO {
	p := t.Parties()
	return TransferDTO{
		ID:              t.ID().Bytes(),
		Reference:       t.Reference().String(),
		SenderName:      p.SenderName,
		BeneficiaryName: p.BeneficiaryName,
		Origin:          p.Origin,
		Destination:     p.Destination,
		AmountMinor:     t.Amount().Amount(),
		Currency:        t.Amount().Currency(),
		CreatedAt:       t.CreatedAt(),
	}
}

func toDomain(dto TransferDTO) (*transfer.Transfer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ref, err := transfer.ParseReference(dto.Reference)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.AmountMinor, dto.Currency)
	if err != nil {
		return nil, err
	}

	return transfer.NewTransfer(id, ref, transfer.Parties{
		SenderName:      dto.SenderName,
		BeneficiaryName: dto.BeneficiaryName,
		Origin:          dto.Origin,
		Destination:     dto.Destination,
	}, amount, dto.CreatedAt)
}
