package scheduling

import (
	"context"
	"time"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/anjiri1684/tutoring_center/utils"
	"github.com/google/uuid"
)

// contractTransitions is the single transition table for contract status.
// completed and cancelled are terminal.
var contractTransitions = map[string][]string{
	models.ContractPending:   {models.ContractActive, models.ContractCancelled},
	models.ContractActive:    {models.ContractCompleted, models.ContractCancelled},
	models.ContractCompleted: {},
	models.ContractCancelled: {},
}

func contractStatusKnown(status string) bool {
	_, ok := contractTransitions[status]
	return ok
}

func canTransition(from, to string) bool {
	for _, next := range contractTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ContractService orchestrates contract creation, status transitions and
// tutor assignment. Every operation locks the contract (or child, for
// creation) and runs its reads and writes in one store transaction.
type ContractService struct {
	store Stores
	locks *keyMutex
}

func NewContractService(store Stores) *ContractService {
	return &ContractService{store: store, locks: newKeyMutex()}
}

type CreateContractInput struct {
	ParentID       uuid.UUID
	ChildID        uuid.UUID
	PackageID      uuid.UUID
	CenterID       uuid.UUID
	MainTutorID    *uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	StartTime      string
	EndTime        string
	DaysOfWeekMask int
}

// Create validates the contract definition, checks the child's calendar for
// conflicts, expands the session series and persists contract plus sessions
// as one unit. Nothing is written when any check fails.
func (s *ContractService) Create(ctx context.Context, in CreateContractInput) (*models.Contract, error) {
	mask, err := NewDayMask(in.DaysOfWeekMask)
	if err != nil {
		return nil, err
	}
	if err := ValidateSessionWindow(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock("child:" + in.ChildID.String())
	defer unlock()

	var contract *models.Contract
	err = s.store.Atomically(ctx, func(tx Stores) error {
		pkg, err := tx.Packages().GetByID(ctx, in.PackageID)
		if err != nil {
			return err
		}

		conflict, err := tx.Contracts().HasOverlappingContractForChild(ctx,
			in.ChildID, in.StartDate, in.EndDate, in.StartTime, in.EndTime, mask, uuid.Nil)
		if err != nil {
			return err
		}
		if conflict {
			return NewConflict("child already has an overlapping contract in this period")
		}

		slots, err := GenerateSessions(in.StartDate, in.EndDate, in.StartTime, in.EndTime, mask, pkg.SessionCount)
		if err != nil {
			return err
		}

		contract = &models.Contract{
			ContractNumber:   utils.NewContractNumber(),
			ParentID:         in.ParentID,
			ChildID:          in.ChildID,
			PackageID:        in.PackageID,
			CenterID:         in.CenterID,
			MainTutorID:      in.MainTutorID,
			AssistantTutorID: nil,
			StartDate:        in.StartDate,
			EndDate:          in.EndDate,
			StartTime:        in.StartTime,
			EndTime:          in.EndTime,
			DaysOfWeekMask:   int16(mask),
			SessionCount:     pkg.SessionCount,
			RescheduleCount:  pkg.MaxReschedule,
			Status:           models.ContractPending,
		}
		if err := tx.Contracts().Add(ctx, contract); err != nil {
			return err
		}

		sessions := make([]*models.ContractSession, 0, len(slots))
		for i, slot := range slots {
			sessions = append(sessions, &models.ContractSession{
				ContractID:    contract.ID,
				SessionNumber: i + 1,
				SessionDate:   slot.Date,
				StartTime:     slot.Start,
				EndTime:       slot.End,
				TutorID:       in.MainTutorID,
				Status:        models.SessionScheduled,
			})
		}
		return tx.Sessions().AddMany(ctx, sessions)
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// UpdateStatus applies one legal transition. Moving to cancelled cascades:
// scheduled and rescheduled sessions under the contract become cancelled,
// sessions already done are untouched.
func (s *ContractService) UpdateStatus(ctx context.Context, contractID uuid.UUID, newStatus string) (*models.Contract, error) {
	if !contractStatusKnown(newStatus) {
		return nil, NewValidation("unknown contract status %q", newStatus)
	}

	unlock := s.locks.Lock("contract:" + contractID.String())
	defer unlock()

	var contract *models.Contract
	err := s.store.Atomically(ctx, func(tx Stores) error {
		var err error
		contract, err = tx.Contracts().GetByID(ctx, contractID)
		if err != nil {
			return err
		}
		if !canTransition(contract.Status, newStatus) {
			return NewConflict("cannot move contract from %s to %s", contract.Status, newStatus)
		}

		contract.Status = newStatus
		if err := tx.Contracts().Update(ctx, contract); err != nil {
			return err
		}

		if newStatus != models.ContractCancelled {
			return nil
		}
		sessions, err := tx.Sessions().GetByContract(ctx, contractID)
		if err != nil {
			return err
		}
		for _, session := range sessions {
			if session.Status != models.SessionScheduled && session.Status != models.SessionRescheduled {
				continue
			}
			session.Status = models.SessionCancelled
			if err := tx.Sessions().Update(ctx, session); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// AssignTutors sets the main (and optionally assistant) tutor on a contract
// and writes the main tutor onto its open sessions.
func (s *ContractService) AssignTutors(ctx context.Context, contractID, mainTutorID uuid.UUID, assistantTutorID *uuid.UUID) (*models.Contract, error) {
	if mainTutorID == uuid.Nil {
		return nil, NewValidation("main tutor id is required")
	}

	unlock := s.locks.Lock("contract:" + contractID.String())
	defer unlock()

	var contract *models.Contract
	err := s.store.Atomically(ctx, func(tx Stores) error {
		var err error
		contract, err = tx.Contracts().GetByID(ctx, contractID)
		if err != nil {
			return err
		}
		if contract.Status == models.ContractCancelled {
			return NewConflict("cannot assign tutors on a cancelled contract")
		}

		main := mainTutorID
		contract.MainTutorID = &main
		contract.AssistantTutorID = assistantTutorID
		if err := tx.Contracts().Update(ctx, contract); err != nil {
			return err
		}
		return tx.Sessions().UpdateTutorForOpenSessions(ctx, contractID, mainTutorID)
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}
