package queries

import (
	"context"

	"shipping/internal/core/domain/services"
)

type GetTransfersGroupedQueryHandler struct {
	transfers TransferReader
}

func NewGetTransfersGroupedQueryHandler(transfers TransferReader) GetTransfersGroupedQueryHandler {
	return GetTransfersGroupedQueryHandler{transfers: transfers}
}

func (h GetTransfersGroupedQueryHandler) Handle(
	ctx context.Context,
	query GetTransfersGroupedQuery,
) ([]TransferBucketResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.actor.IsElevated() {
		return nil, services.ErrActorNotPrivileged
	}

	items, err := h.transfers.List(ctx)
	if err != nil {
		return nil, err
	}

	buckets := services.FilterBuckets(services.GroupByBucket(items, services.TransferBuckets()), query.search)

	response := make([]TransferBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		rows := make([]TransferSummary, 0, len(b.Items))
		for _, t := range b.Items {
			p := t.Parties()
			rows = append(rows, TransferSummary{
				ID:              t.ID(),
				Reference:       t.Reference().String(),
				SenderName:      p.SenderName,
				BeneficiaryName: p.BeneficiaryName,
				Origin:          p.Origin,
				Destination:     p.Destination,
				Amount:          t.Amount(),
				CreatedAt:       t.CreatedAt(),
			})
		}
		response = append(response, TransferBucketResponse{Key: b.Key, Transfers: rows})
	}
	return response, nil
}
