package service

import "jesbridge/backend/internal/model"

// JobRunner executes a validated run request and produces the tabular result
// set. The only implementation today simulates the job locally; a real SAS
// Viya JES submission would slot in behind the same interface.
type JobRunner interface {
	Run(req model.RunRequest) (*model.RunResponse, error)
}
