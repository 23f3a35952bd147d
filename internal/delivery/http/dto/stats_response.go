package dto

type PlatformStatsResponse struct {
	Users       int64 `json:"users"`
	Jobs        int64 `json:"jobs"`
	PendingJobs int64 `json:"pending_jobs"`
}
