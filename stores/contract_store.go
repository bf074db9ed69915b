package stores

import (
	"context"
	"time"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/anjiri1684/tutoring_center/scheduling"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type contractStore struct {
	db *gorm.DB
}

// GetByID takes a row lock so a concurrent status update or reschedule
// approval against the same contract serializes on the database. Outside a
// transaction the clause is a no-op.
func (s *contractStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&contract, "id = ?", id).Error
	if err != nil {
		return nil, storeErr(err, "contract %s", id)
	}
	return &contract, nil
}

func (s *contractStore) GetByIDWithPackage(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	err := s.db.WithContext(ctx).
		Preload("Package").
		First(&contract, "id = ?", id).Error
	if err != nil {
		return nil, storeErr(err, "contract %s", id)
	}
	return &contract, nil
}

func (s *contractStore) Add(ctx context.Context, contract *models.Contract) error {
	return storeErr(s.db.WithContext(ctx).Create(contract).Error, "create contract")
}

func (s *contractStore) Update(ctx context.Context, contract *models.Contract) error {
	return storeErr(s.db.WithContext(ctx).Save(contract).Error, "update contract %s", contract.ID)
}

// HasOverlappingContractForChild applies all three gates in SQL: date
// ranges intersect, weekday masks intersect (bitwise AND) and the daily
// time windows intersect. Time-of-day columns are "HH:MM" strings, which
// compare correctly as text. Completed and cancelled contracts never block.
func (s *contractStore) HasOverlappingContractForChild(ctx context.Context, childID uuid.UUID, startDate, endDate time.Time, startTime, endTime string, mask scheduling.DayMask, excludeContractID uuid.UUID) (bool, error) {
	q := s.db.WithContext(ctx).Model(&models.Contract{}).
		Where("child_id = ?", childID).
		Where("status IN ?", []string{models.ContractPending, models.ContractActive}).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Where("(days_of_week_mask & ?) <> 0", int16(mask)).
		Where("start_time < ? AND ? < end_time", endTime, startTime)
	if excludeContractID != uuid.Nil {
		q = q.Where("id <> ?", excludeContractID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, storeErr(err, "overlap check for child %s", childID)
	}
	return count > 0, nil
}
