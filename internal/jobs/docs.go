// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DispatchDigestJob reads the operations folder view and logs the number of
// open shipments per departure window and the number of money transfers.
// It only reads; the engine itself owns no timers.
//
// # Usage
//
//	digest, err := jobs.NewDispatchDigestJob(shipmentBuckets, transferBuckets, cfg.DigestCron, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(digest)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Specs use the six field cron format with seconds. An empty spec falls back
// to DefaultDigestSpec.
package jobs
