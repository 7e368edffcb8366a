package entity

import (
	"encoding/json"
	"time"
)

const (
	DLQStatusPending           = "pending"
	DLQStatusFailed            = "failed"
	DLQStatusCompleted         = "completed"
	DLQStatusPermanentlyFailed = "permanently_failed"
)

// DLQJob is a dead-lettered background job archived for audit and retry.
type DLQJob struct {
	ID          string          `bson:"_id" json:"id"`
	JobID       string          `bson:"jobId" json:"jobId"`
	Type        string          `bson:"type" json:"type"`
	Payload     json.RawMessage `bson:"payload" json:"payload"`
	Status      string          `bson:"status" json:"status"`
	RetryCount  int             `bson:"retryCount" json:"retryCount"`
	ErrorMsg    string          `bson:"errorMsg,omitempty" json:"errorMsg,omitempty"`
	NextRetryAt *time.Time      `bson:"nextRetryAt,omitempty" json:"nextRetryAt,omitempty"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}
