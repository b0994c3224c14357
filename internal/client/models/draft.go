// Package models defines client-side data models persisted locally.
package models

import "time"

// Draft holds the intake form fields of an unsent submission so they
// survive a failed submit or a restart. One draft is kept per owner.
type Draft struct {
	OwnerID        string
	Title          string
	Description    string
	AttachmentPath string
	UpdatedAt      time.Time
}

// Empty reports whether nothing worth keeping was entered.
func (d Draft) Empty() bool {
	return d.Title == "" && d.Description == "" && d.AttachmentPath == ""
}
