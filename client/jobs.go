package client

import (
	"context"

	"github.com/engagekit/go-engage/xmlmap"
)

// Job states reported by GetJobStatus.
const (
	JobWaiting  = "WAITING"
	JobRunning  = "RUNNING"
	JobComplete = "COMPLETE"
	JobCanceled = "CANCELED"
	JobError    = "ERROR"
)

// JobStatus describes a background job on the server.
type JobStatus struct {
	// ID is the job id as echoed by the server.
	ID string

	// Status is one of the Job* states.
	Status string

	// Description is the server's description of the job.
	Description string

	// Result is the full RESULT subtree, including any PARAMETERS.
	Result *xmlmap.Value
}

// Finished reports whether the job has reached a terminal state.
func (s *JobStatus) Finished() bool {
	switch s.Status {
	case JobComplete, JobCanceled, JobError:
		return true
	}
	return false
}

// GetJobStatus polls a background job such as an import, export or purge.
func (c *Client) GetJobStatus(ctx context.Context, jobID string) (*JobStatus, error) {
	op := xmlmap.NewMap().Set("JOB_ID", xmlmap.String(jobID))
	result, err := c.api.Submit(ctx, envelope("GetJobStatus", op))
	if err != nil {
		return nil, err
	}
	return &JobStatus{
		ID:          result.Get("JOB_ID").Text(),
		Status:      result.Get("JOB_STATUS").Text(),
		Description: result.Get("JOB_DESCRIPTION").Text(),
		Result:      result,
	}, nil
}
