package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultDigestSpec runs the digest every day at 07:00 (seconds field first).
const DefaultDigestSpec = "0 0 7 * * *"

// DigestActorID identifies the job in the audit trail of the queries it runs.
const DigestActorID = "dispatch-digest"

type ShipmentBucketsHandler interface {
	Handle(ctx context.Context, query queries.GetShipmentsGroupedByBucketQuery) ([]queries.ShipmentBucketResponse, error)
}

type TransferBucketsHandler interface {
	Handle(ctx context.Context, query queries.GetTransfersGroupedQuery) ([]queries.TransferBucketResponse, error)
}

// DispatchDigestJob logs how many open shipments sit in each departure
// folder, plus the pending transfers, so operators see the load per window.
type DispatchDigestJob struct {
	shipments ShipmentBucketsHandler
	transfers TransferBucketsHandler
	spec      string
	actor     kernel.Actor
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewDispatchDigestJob(
	shipments ShipmentBucketsHandler,
	transfers TransferBucketsHandler,
	spec string,
	logger *slog.Logger,
) (*DispatchDigestJob, error) {
	if spec == "" {
		spec = DefaultDigestSpec
	}
	actor, err := kernel.NewActor(DigestActorID, kernel.RoleOperator)
	if err != nil {
		return nil, err
	}
	return &DispatchDigestJob{
		shipments: shipments,
		transfers: transfers,
		spec:      spec,
		actor:     actor,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "dispatch_digest_job"),
	}, nil
}

// Start schedules the digest. An invalid cron spec is returned as is.
func (j *DispatchDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Dispatch digest job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch digest job started", "spec", j.spec)
	return nil
}

// Stop waits for a running digest to finish.
func (j *DispatchDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch digest job stopped")
}

// Run builds one digest now.
func (j *DispatchDigestJob) Run(ctx context.Context) error {
	buckets, err := j.shipments.Handle(ctx, queries.NewGetShipmentsGroupedByBucketQuery(j.actor, "", false))
	if err != nil {
		return fmt.Errorf("shipment buckets: %w", err)
	}

	total := 0
	for _, b := range buckets {
		total += len(b.Shipments)
		j.logger.InfoContext(ctx, "Dispatch bucket",
			"bucket", b.Key,
			"shipments", len(b.Shipments))
	}

	transferBuckets, err := j.transfers.Handle(ctx, queries.NewGetTransfersGroupedQuery(j.actor, ""))
	if err != nil {
		return fmt.Errorf("transfer buckets: %w", err)
	}
	transfers := 0
	for _, b := range transferBuckets {
		transfers += len(b.Transfers)
	}

	j.logger.InfoContext(ctx, "Dispatch digest",
		"buckets", len(buckets),
		"shipments", total,
		"transfers", transfers)
	return nil
}
