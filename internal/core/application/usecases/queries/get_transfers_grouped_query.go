package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetTransfersGroupedQueryIsNotConstructed = errors.New(
	"GetTransfersGroupedQuery must be created via NewGetTransfersGroupedQuery constructor",
)

// GetTransfersGroupedQuery lists money transfers in their single virtual folder.
type GetTransfersGroupedQuery struct {
	actor  kernel.Actor
	search string

	guard guard.ConstructorGuard
}

func NewGetTransfersGroupedQuery(actor kernel.Actor, search string) GetTransfersGroupedQuery {
	return GetTransfersGroupedQuery{actor: actor, search: search, guard: guard.NewConstructorGuard()}
}

func (q GetTransfersGroupedQuery) Validate() error {
	return q.guard.Validate(ErrGetTransfersGroupedQueryIsNotConstructed)
}

type TransferBucketResponse struct {
	Key       string
	Transfers []TransferSummary
}

type TransferSummary struct {
	ID              kernel.UUID
	Reference       string
	SenderName      string
	BeneficiaryName string
	Origin          string
	Destination     string
	Amount          kernel.Money
	CreatedAt       time.Time
}
