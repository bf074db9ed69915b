package scheduling

import (
	"context"
	"time"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/google/uuid"
)

// The scheduling core talks to persistence only through these interfaces.
// Implementations must map their own failures onto the error taxonomy:
// missing rows to not-found, timeouts/connectivity to transient.

type PackageStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Package, error)
}

type SessionStore interface {
	AddMany(ctx context.Context, sessions []*models.ContractSession) error
	GetByContract(ctx context.Context, contractID uuid.UUID) ([]*models.ContractSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ContractSession, error)
	Update(ctx context.Context, session *models.ContractSession) error
	UpdateTutorForOpenSessions(ctx context.Context, contractID, tutorID uuid.UUID) error
	// IsTutorAvailable reports whether the tutor has no scheduled session
	// overlapping [start,end), ignoring excludeSessionID (uuid.Nil ignores
	// nothing).
	IsTutorAvailable(ctx context.Context, tutorID uuid.UUID, start, end time.Time, excludeSessionID uuid.UUID) (bool, error)
}

type ContractStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	GetByIDWithPackage(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	Add(ctx context.Context, contract *models.Contract) error
	Update(ctx context.Context, contract *models.Contract) error
	// HasOverlappingContractForChild reports whether the child already has a
	// pending or active contract whose date range, weekday mask and daily
	// time window all intersect the given ones. Contracts with disjoint
	// weekday masks never conflict. excludeContractID (uuid.Nil for none)
	// keeps a contract from conflicting with itself.
	HasOverlappingContractForChild(ctx context.Context, childID uuid.UUID, startDate, endDate time.Time, startTime, endTime string, mask DayMask, excludeContractID uuid.UUID) (bool, error)
}

type RescheduleStore interface {
	HasPendingForBooking(ctx context.Context, sessionID uuid.UUID) (bool, error)
	HasPendingForContract(ctx context.Context, contractID uuid.UUID) (bool, error)
	GetByIDWithDetails(ctx context.Context, id uuid.UUID) (*models.RescheduleRequest, error)
	Add(ctx context.Context, req *models.RescheduleRequest) error
	Update(ctx context.Context, req *models.RescheduleRequest) error
}

// Stores bundles the collaborators and provides atomic execution: within
// Atomically every store call runs in one transaction, and an error unwinds
// all of it. The services rely on this for their no-partial-writes
// guarantee.
type Stores interface {
	Packages() PackageStore
	Sessions() SessionStore
	Contracts() ContractStore
	Reschedules() RescheduleStore
	Atomically(ctx context.Context, fn func(Stores) error) error
}
