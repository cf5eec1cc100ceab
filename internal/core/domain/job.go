package domain

// JobStatus is the coarse state of a query job on the remote engine.
type JobStatus string

const (
	JobUnknown   JobStatus = "unknown"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Terminal reports whether the job will not change state anymore.
func (s JobStatus) Terminal() bool {
	return s == JobSucceeded || s == JobFailed
}
