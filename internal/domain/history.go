package domain

import "time"

// StatusChange records one applied transition of a submission.
type StatusChange struct {
	SubmissionID string    `json:"submission_id"`
	From         Status    `json:"from_status"`
	To           Status    `json:"to_status"`
	ChangedBy    string    `json:"changed_by"`
	ChangedAt    time.Time `json:"changed_at"`
}
