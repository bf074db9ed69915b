package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type RescheduleRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID `gorm:"not null" json:"session_id"`
	// The partial unique index keeps "at most one pending request per
	// contract" true across app instances, not just behind the in-process
	// lock.
	ContractID uuid.UUID `gorm:"not null;index:uniq_one_pending_per_contract,unique,where:status = 'pending'" json:"contract_id"`

	RequestedDate time.Time `gorm:"type:date;not null" json:"requested_date"`
	StartTime     time.Time `gorm:"not null" json:"start_time"`
	EndTime       time.Time `gorm:"not null" json:"end_time"`
	Reason        string    `gorm:"type:text" json:"reason"`

	Status         string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	ResolvedByID   *uuid.UUID `json:"resolved_by_id"`
	ResolutionNote *string    `gorm:"type:text" json:"resolution_note"`

	Session  ContractSession `gorm:"foreignkey:SessionID" json:"session,omitempty"`
	Contract Contract        `gorm:"foreignkey:ContractID" json:"contract,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
