package models

import (
	"time"

	"github.com/google/uuid"
)

// TutorAvailability is one weekly recurring window a tutor has declared.
// DayOfWeek uses the same convention as the contract day mask: 0=Monday ... 6=Sunday.
type TutorAvailability struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID   uuid.UUID `gorm:"not null" json:"-"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`

	Tutor User `gorm:"foreignkey:TutorID" json:"tutor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
