package stores

import (
	"context"
	"time"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/anjiri1684/tutoring_center/scheduling"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sessionStore struct {
	db *gorm.DB
}

func (s *sessionStore) AddMany(ctx context.Context, sessions []*models.ContractSession) error {
	if len(sessions) == 0 {
		return nil
	}
	return storeErr(s.db.WithContext(ctx).Create(sessions).Error, "create sessions")
}

func (s *sessionStore) GetByContract(ctx context.Context, contractID uuid.UUID) ([]*models.ContractSession, error) {
	var sessions []*models.ContractSession
	err := s.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("session_date asc, start_time asc").
		Find(&sessions).Error
	if err != nil {
		return nil, storeErr(err, "sessions for contract %s", contractID)
	}
	return sessions, nil
}

func (s *sessionStore) GetByID(ctx context.Context, id uuid.UUID) (*models.ContractSession, error) {
	var session models.ContractSession
	err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		return nil, storeErr(err, "session %s", id)
	}
	return &session, nil
}

func (s *sessionStore) Update(ctx context.Context, session *models.ContractSession) error {
	return storeErr(s.db.WithContext(ctx).Save(session).Error, "update session %s", session.ID)
}

func (s *sessionStore) UpdateTutorForOpenSessions(ctx context.Context, contractID, tutorID uuid.UUID) error {
	err := s.db.WithContext(ctx).Model(&models.ContractSession{}).
		Where("contract_id = ? AND status IN ?", contractID,
			[]string{models.SessionScheduled, models.SessionRescheduled}).
		Update("tutor_id", tutorID).Error
	return storeErr(err, "assign tutor on contract %s", contractID)
}

// IsTutorAvailable loads the tutor's scheduled sessions on the requested
// day and evaluates them with scheduling.AnyOverlap, so the half-open rule
// and the moved-session exclusion live in one place.
func (s *sessionStore) IsTutorAvailable(ctx context.Context, tutorID uuid.UUID, start, end time.Time, excludeSessionID uuid.UUID) (bool, error) {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	var sessions []*models.ContractSession
	err := s.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Where("status = ?", models.SessionScheduled).
		Where("session_date = ?", day).
		Find(&sessions).Error
	if err != nil {
		return false, storeErr(err, "availability check for tutor %s", tutorID)
	}

	existing := make([]scheduling.Interval, 0, len(sessions))
	for _, session := range sessions {
		existing = append(existing, scheduling.Interval{
			ID:    session.ID.String(),
			Start: session.StartTime,
			End:   session.EndTime,
		})
	}
	exclude := ""
	if excludeSessionID != uuid.Nil {
		exclude = excludeSessionID.String()
	}
	return !scheduling.AnyOverlap(start, end, existing, exclude), nil
}
