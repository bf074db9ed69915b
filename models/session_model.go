package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionScheduled   = "scheduled"
	SessionDone        = "done"
	SessionCancelled   = "cancelled"
	SessionRescheduled = "rescheduled"
)

// ContractSession is one booked lesson occurrence. A reschedule never
// changes the date/time in place: the original row is marked rescheduled
// and RescheduledToID points at the replacement.
type ContractSession struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ContractID    uuid.UUID `gorm:"not null" json:"contract_id"`
	SessionNumber int       `gorm:"not null" json:"session_number"`

	SessionDate time.Time `gorm:"type:date;not null" json:"session_date"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`

	TutorID         *uuid.UUID `json:"tutor_id"`
	Status          string     `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	RescheduledToID *uuid.UUID `json:"rescheduled_to_id"`

	Contract Contract `gorm:"foreignkey:ContractID" json:"contract,omitempty"`
	Tutor    User     `gorm:"foreignkey:TutorID" json:"tutor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
