package model

import "time"

type LeadSource string

const (
	LeadSourceWaitlist LeadSource = "waitlist"
	LeadSourcePartner  LeadSource = "partner"
	LeadSourceContact  LeadSource = "contact"
)

func (s LeadSource) Valid() bool {
	switch s {
	case LeadSourceWaitlist, LeadSourcePartner, LeadSourceContact:
		return true
	}
	return false
}

type Lead struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Company   *string    `json:"company,omitempty"`
	Source    LeadSource `json:"source"`
	Message   *string    `json:"message,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
