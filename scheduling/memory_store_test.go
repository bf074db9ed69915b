package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/google/uuid"
)

// memStores is an in-memory Stores implementation mirroring the SQL
// semantics of the gorm stores: overlap checks use the same half-open
// interval rules and mask intersection.
type memStores struct {
	mu        sync.Mutex
	packages  map[uuid.UUID]*models.Package
	contracts map[uuid.UUID]*models.Contract
	sessions  map[uuid.UUID]*models.ContractSession
	requests  map[uuid.UUID]*models.RescheduleRequest
}

func newMemStores() *memStores {
	return &memStores{
		packages:  make(map[uuid.UUID]*models.Package),
		contracts: make(map[uuid.UUID]*models.Contract),
		sessions:  make(map[uuid.UUID]*models.ContractSession),
		requests:  make(map[uuid.UUID]*models.RescheduleRequest),
	}
}

func (m *memStores) Packages() PackageStore       { return &memPackages{m} }
func (m *memStores) Sessions() SessionStore       { return &memSessions{m} }
func (m *memStores) Contracts() ContractStore     { return &memContracts{m} }
func (m *memStores) Reschedules() RescheduleStore { return &memReschedules{m} }

func (m *memStores) Atomically(ctx context.Context, fn func(Stores) error) error {
	return fn(m)
}

func (m *memStores) addPackage(pkg *models.Package) *models.Package {
	if pkg.ID == uuid.Nil {
		pkg.ID = uuid.New()
	}
	m.packages[pkg.ID] = pkg
	return pkg
}

type memPackages struct{ m *memStores }

func (s *memPackages) GetByID(ctx context.Context, id uuid.UUID) (*models.Package, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	pkg, ok := s.m.packages[id]
	if !ok {
		return nil, NewNotFound("package %s", id)
	}
	return pkg, nil
}

type memSessions struct{ m *memStores }

func (s *memSessions) AddMany(ctx context.Context, sessions []*models.ContractSession) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, session := range sessions {
		if session.ID == uuid.Nil {
			session.ID = uuid.New()
		}
		s.m.sessions[session.ID] = session
	}
	return nil
}

func (s *memSessions) GetByContract(ctx context.Context, contractID uuid.UUID) ([]*models.ContractSession, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []*models.ContractSession
	for _, session := range s.m.sessions {
		if session.ContractID == contractID {
			out = append(out, session)
		}
	}
	return out, nil
}

func (s *memSessions) GetByID(ctx context.Context, id uuid.UUID) (*models.ContractSession, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	session, ok := s.m.sessions[id]
	if !ok {
		return nil, NewNotFound("session %s", id)
	}
	return session, nil
}

func (s *memSessions) Update(ctx context.Context, session *models.ContractSession) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.sessions[session.ID] = session
	return nil
}

func (s *memSessions) UpdateTutorForOpenSessions(ctx context.Context, contractID, tutorID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, session := range s.m.sessions {
		if session.ContractID != contractID {
			continue
		}
		if session.Status == models.SessionScheduled || session.Status == models.SessionRescheduled {
			id := tutorID
			session.TutorID = &id
		}
	}
	return nil
}

func (s *memSessions) IsTutorAvailable(ctx context.Context, tutorID uuid.UUID, start, end time.Time, excludeSessionID uuid.UUID) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var existing []Interval
	for _, session := range s.m.sessions {
		if session.TutorID == nil || *session.TutorID != tutorID {
			continue
		}
		if session.Status != models.SessionScheduled {
			continue
		}
		existing = append(existing, Interval{ID: session.ID.String(), Start: session.StartTime, End: session.EndTime})
	}
	exclude := ""
	if excludeSessionID != uuid.Nil {
		exclude = excludeSessionID.String()
	}
	return !AnyOverlap(start, end, existing, exclude), nil
}

type memContracts struct{ m *memStores }

func (s *memContracts) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	contract, ok := s.m.contracts[id]
	if !ok {
		return nil, NewNotFound("contract %s", id)
	}
	return contract, nil
}

func (s *memContracts) GetByIDWithPackage(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	contract, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg, ok := s.m.packages[contract.PackageID]; ok {
		contract.Package = *pkg
	}
	return contract, nil
}

func (s *memContracts) Add(ctx context.Context, contract *models.Contract) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if contract.ID == uuid.Nil {
		contract.ID = uuid.New()
	}
	s.m.contracts[contract.ID] = contract
	return nil
}

func (s *memContracts) Update(ctx context.Context, contract *models.Contract) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.contracts[contract.ID] = contract
	return nil
}

func (s *memContracts) HasOverlappingContractForChild(ctx context.Context, childID uuid.UUID, startDate, endDate time.Time, startTime, endTime string, mask DayMask, excludeContractID uuid.UUID) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, contract := range s.m.contracts {
		if contract.ChildID != childID {
			continue
		}
		if contract.Status != models.ContractPending && contract.Status != models.ContractActive {
			continue
		}
		if excludeContractID != uuid.Nil && contract.ID == excludeContractID {
			continue
		}
		if contract.StartDate.After(endDate) || contract.EndDate.Before(startDate) {
			continue
		}
		if !mask.Intersects(DayMask(contract.DaysOfWeekMask)) {
			continue
		}
		if contract.StartTime < endTime && startTime < contract.EndTime {
			return true, nil
		}
	}
	return false, nil
}

type memReschedules struct{ m *memStores }

func (s *memReschedules) HasPendingForBooking(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, req := range s.m.requests {
		if req.SessionID == sessionID && req.Status == models.RequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *memReschedules) HasPendingForContract(ctx context.Context, contractID uuid.UUID) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, req := range s.m.requests {
		if req.ContractID == contractID && req.Status == models.RequestPending {
			return true, nil
		}
	}
	return false, nil
}

// GetByIDWithDetails hands back a copy, like a row read: a resolution that
// fails part-way must not leave field changes behind in the store.
func (s *memReschedules) GetByIDWithDetails(ctx context.Context, id uuid.UUID) (*models.RescheduleRequest, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	req, ok := s.m.requests[id]
	if !ok {
		return nil, NewNotFound("reschedule request %s", id)
	}
	out := *req
	if session, ok := s.m.sessions[req.SessionID]; ok {
		out.Session = *session
	}
	if contract, ok := s.m.contracts[req.ContractID]; ok {
		out.Contract = *contract
	}
	return &out, nil
}

// Add enforces the one-pending-request-per-contract unique index.
func (s *memReschedules) Add(ctx context.Context, req *models.RescheduleRequest) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if req.Status == models.RequestPending {
		for _, other := range s.m.requests {
			if other.ContractID == req.ContractID && other.Status == models.RequestPending {
				return NewConflict("create reschedule request")
			}
		}
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	s.m.requests[req.ID] = req
	return nil
}

func (s *memReschedules) Update(ctx context.Context, req *models.RescheduleRequest) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.requests[req.ID] = req
	return nil
}
