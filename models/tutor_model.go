package models

import (
	"time"

	"github.com/google/uuid"
)

type Tutor struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null;unique" json:"user_id"`
	Specialty  *string   `gorm:"size:255" json:"specialty"`
	Bio        *string   `gorm:"type:text" json:"bio"`
	HourlyRate float64   `gorm:"type:numeric(10,2);default:0.00" json:"hourly_rate"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
