package model

import "time"

// Job a job site
type Job struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Worker a field worker
type Worker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateJobRequest create job request
type CreateJobRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address,omitempty"`
}

// CreateWorkerRequest create worker request
type CreateWorkerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone,omitempty"`
}
