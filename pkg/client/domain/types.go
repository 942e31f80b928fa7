package domain

// JobInfo identifies a load-generation job as known to the cloud provider.
// Address is the instance's external IP and may be empty while the provider
// is still assigning one.
type JobInfo struct {
	Name    string
	Zone    string
	Address string
}

// LoadStatus is the point-in-time state reported by a job's Load Agent.
type LoadStatus struct {
	State     string  `json:"state"`
	UserCount int     `json:"user_count"`
	TotalRPS  float64 `json:"total_rps"`
	FailRatio float64 `json:"fail_ratio"`
}

// JobStatus pairs a job with the outcome of querying its agent. A nil
// Status with a non-nil Err means the agent could not be reached, which is
// distinct from a reachable agent reporting zero values.
type JobStatus struct {
	Job    JobInfo
	Status *LoadStatus
	Err    error
}
