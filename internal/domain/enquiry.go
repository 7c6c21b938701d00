package domain

import "time"

type EnquiryStatus string

const (
	EnquiryStatusNew        EnquiryStatus = "new"
	EnquiryStatusInProgress EnquiryStatus = "in_progress"
	EnquiryStatusResolved   EnquiryStatus = "resolved"
)

func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusInProgress, EnquiryStatusResolved:
		return true
	}
	return false
}

type Enquiry struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	Status    EnquiryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
