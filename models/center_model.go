package models

import (
	"time"

	"github.com/google/uuid"
)

type Center struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Address     *string   `gorm:"size:255" json:"address"`
	PhoneNumber *string   `gorm:"size:20" json:"phone_number"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
