package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContractPending   = "pending"
	ContractActive    = "active"
	ContractCompleted = "completed"
	ContractCancelled = "cancelled"
)

// Contract binds a parent/child to a tutor for a recurring series of
// sessions. StartTime/EndTime are times of day ("15:04"); the concrete
// session timestamps live on ContractSession rows generated at creation.
type Contract struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ContractNumber string    `gorm:"size:16;not null;unique" json:"contract_number"`

	ParentID         uuid.UUID  `gorm:"not null" json:"parent_id"`
	ChildID          uuid.UUID  `gorm:"not null" json:"child_id"`
	PackageID        uuid.UUID  `gorm:"not null" json:"package_id"`
	CenterID         uuid.UUID  `gorm:"not null" json:"center_id"`
	MainTutorID      *uuid.UUID `json:"main_tutor_id"`
	AssistantTutorID *uuid.UUID `json:"assistant_tutor_id"`

	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null" json:"end_date"`
	StartTime      string    `gorm:"size:5;not null" json:"start_time"`
	EndTime        string    `gorm:"size:5;not null" json:"end_time"`
	DaysOfWeekMask int16     `gorm:"not null" json:"days_of_week_mask"`

	SessionCount    int    `gorm:"not null" json:"session_count"`
	RescheduleCount int    `gorm:"not null;default:0" json:"reschedule_count"`
	Status          string `gorm:"size:20;not null;default:'pending'" json:"status"`

	Parent  User    `gorm:"foreignkey:ParentID" json:"parent,omitempty"`
	Child   Child   `gorm:"foreignkey:ChildID" json:"child,omitempty"`
	Package Package `gorm:"foreignkey:PackageID" json:"package,omitempty"`
	Center  Center  `gorm:"foreignkey:CenterID" json:"center,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
