package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anjiri1684/tutoring_center/scheduling"
	"gorm.io/gorm"
)

// GormStores implements scheduling.Stores on a gorm handle. Atomically
// rebinds the whole set to the transaction handle, so every store call made
// inside the callback joins the same transaction.
type GormStores struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStores {
	return &GormStores{db: db}
}

func (s *GormStores) Packages() scheduling.PackageStore       { return &packageStore{db: s.db} }
func (s *GormStores) Sessions() scheduling.SessionStore       { return &sessionStore{db: s.db} }
func (s *GormStores) Contracts() scheduling.ContractStore     { return &contractStore{db: s.db} }
func (s *GormStores) Reschedules() scheduling.RescheduleStore { return &rescheduleStore{db: s.db} }

// txTimeout bounds every transaction; a store that cannot answer in time
// surfaces a transient error instead of blocking the request.
const txTimeout = 10 * time.Second

func (s *GormStores) Atomically(ctx context.Context, fn func(scheduling.Stores) error) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStores{db: tx})
	})
}

// storeErr maps gorm failures onto the scheduling error taxonomy: missing
// rows become not-found, unique-index violations become conflicts, and
// everything else (timeouts, connectivity, driver errors) becomes transient
// so the caller knows a retry is safe.
func storeErr(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduling.NewNotFound(format, args...)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return scheduling.NewConflict(format, args...)
	}
	return scheduling.NewTransient(fmt.Sprintf(format, args...), err)
}
