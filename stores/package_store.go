package stores

import (
	"context"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type packageStore struct {
	db *gorm.DB
}

func (s *packageStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Package, error) {
	var pkg models.Package
	err := s.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		return nil, storeErr(err, "package %s", id)
	}
	return &pkg, nil
}
