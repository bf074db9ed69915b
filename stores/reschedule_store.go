package stores

import (
	"context"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type rescheduleStore struct {
	db *gorm.DB
}

func (s *rescheduleStore) HasPendingForBooking(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.RescheduleRequest{}).
		Where("session_id = ? AND status = ?", sessionID, models.RequestPending).
		Count(&count).Error
	if err != nil {
		return false, storeErr(err, "pending reschedule check for session %s", sessionID)
	}
	return count > 0, nil
}

func (s *rescheduleStore) HasPendingForContract(ctx context.Context, contractID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.RescheduleRequest{}).
		Where("contract_id = ? AND status = ?", contractID, models.RequestPending).
		Count(&count).Error
	if err != nil {
		return false, storeErr(err, "pending reschedule check for contract %s", contractID)
	}
	return count > 0, nil
}

// GetByIDWithDetails locks the request row. Inside a transaction a second
// resolver blocks here and re-reads the terminal status after the first
// commit.
func (s *rescheduleStore) GetByIDWithDetails(ctx context.Context, id uuid.UUID) (*models.RescheduleRequest, error) {
	var req models.RescheduleRequest
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Session").
		Preload("Contract").
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, storeErr(err, "reschedule request %s", id)
	}
	return &req, nil
}

func (s *rescheduleStore) Add(ctx context.Context, req *models.RescheduleRequest) error {
	return storeErr(s.db.WithContext(ctx).Create(req).Error, "create reschedule request")
}

func (s *rescheduleStore) Update(ctx context.Context, req *models.RescheduleRequest) error {
	return storeErr(s.db.WithContext(ctx).Save(req).Error, "update reschedule request %s", req.ID)
}
