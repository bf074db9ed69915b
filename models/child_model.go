package models

import (
	"time"

	"github.com/google/uuid"
)

type Child struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ParentID    uuid.UUID  `gorm:"not null" json:"parent_id"`
	FullName    string     `gorm:"size:255;not null" json:"full_name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	GradeLevel  *string    `gorm:"size:50" json:"grade_level"`

	Parent User `gorm:"foreignkey:ParentID" json:"parent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
