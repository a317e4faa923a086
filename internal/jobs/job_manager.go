package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	digestJob *DispatchDigestJob
}

func NewJobManager(digestJob *DispatchDigestJob) *JobManager {
	return &JobManager{digestJob: digestJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.digestJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.digestJob.Stop()
}
