package scheduling

import (
	"context"
	"time"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/google/uuid"
)

// RescheduleStartSlots are the times of day a reschedule may start at.
// Currently the center runs a single afternoon slot.
var RescheduleStartSlots = []string{"16:00"}

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

func allowedStartSlot(startTime string) bool {
	for _, slot := range RescheduleStartSlots {
		if startTime == slot {
			return true
		}
	}
	return false
}

// RescheduleService governs the reschedule request state machine:
// pending -> approved | rejected, both terminal. A contract has at most one
// pending request at a time, and each approval spends one unit of the
// contract's reschedule budget.
type RescheduleService struct {
	store Stores
	locks *keyMutex
	now   func() time.Time
}

func NewRescheduleService(store Stores) *RescheduleService {
	return &RescheduleService{store: store, locks: newKeyMutex(), now: time.Now}
}

// CreateRequest files a pending reschedule request on behalf of a parent.
// The budget is only checked here, not spent; the decrement happens on
// approval.
func (s *RescheduleService) CreateRequest(ctx context.Context, parentID, bookingID uuid.UUID, requestedDate time.Time, startTime, endTime, reason string) (*models.RescheduleRequest, error) {
	if !allowedStartSlot(startTime) {
		return nil, NewValidation("requested start time %s is not an available slot", startTime)
	}
	if err := ValidateSessionWindow(startTime, endTime); err != nil {
		return nil, err
	}
	startClock, _ := parseClock(startTime)
	endClock, _ := parseClock(endTime)
	date := truncateToDate(requestedDate)
	if startClock.on(date).Before(s.now()) {
		return nil, NewValidation("requested time is in the past")
	}

	// Unlocked read to learn which contract to serialize on; every check
	// that matters is redone under the lock inside the transaction.
	peek, err := s.store.Sessions().GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock("contract:" + peek.ContractID.String())
	defer unlock()

	var request *models.RescheduleRequest
	err = s.store.Atomically(ctx, func(tx Stores) error {
		session, err := tx.Sessions().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if session.Status != models.SessionScheduled {
			return NewConflict("only scheduled sessions can be rescheduled")
		}

		pendingForBooking, err := tx.Reschedules().HasPendingForBooking(ctx, session.ID)
		if err != nil {
			return err
		}
		pendingForContract, err := tx.Reschedules().HasPendingForContract(ctx, session.ContractID)
		if err != nil {
			return err
		}
		if pendingForBooking || pendingForContract {
			return NewConflict("a pending reschedule request already exists for this contract")
		}

		contract, err := tx.Contracts().GetByIDWithPackage(ctx, session.ContractID)
		if err != nil {
			return err
		}
		if contract.ParentID != parentID {
			return NewNotFound("booking %s not found for parent", bookingID)
		}
		if contract.Status != models.ContractActive {
			return NewConflict("reschedule requests require an active contract, contract is %s", contract.Status)
		}
		if contract.RescheduleCount <= 0 {
			return NewConflict("reschedule budget for this contract is exhausted (package allows %d)",
				contract.Package.MaxReschedule)
		}

		request = &models.RescheduleRequest{
			SessionID:     session.ID,
			ContractID:    contract.ID,
			RequestedDate: date,
			StartTime:     startClock.on(date),
			EndTime:       endClock.on(date),
			Reason:        reason,
			Status:        models.RequestPending,
		}
		return tx.Reschedules().Add(ctx, request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Resolve approves or rejects a pending request. Approval re-validates the
// tutor's calendar for the new window (excluding the session being moved),
// marks the original session rescheduled, books a replacement session and
// spends one reschedule. Rejection only closes the request. Either way the
// request is terminal; resolving it again is a conflict.
func (s *RescheduleService) Resolve(ctx context.Context, staffID, requestID uuid.UUID, decision string, note string) (*models.RescheduleRequest, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, NewValidation("unknown decision %q", decision)
	}

	// Unlocked read for the contract key only. The lock is taken before the
	// transaction and held until it commits, so the pending check and the
	// terminal write are one step: a second resolver re-reads the request
	// after the first commit and sees the terminal status.
	peek, err := s.store.Reschedules().GetByIDWithDetails(ctx, requestID)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock("contract:" + peek.ContractID.String())
	defer unlock()

	var request *models.RescheduleRequest
	err = s.store.Atomically(ctx, func(tx Stores) error {
		var err error
		request, err = tx.Reschedules().GetByIDWithDetails(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != models.RequestPending {
			return NewConflict("reschedule request is already %s", request.Status)
		}

		staff := staffID
		request.ResolvedByID = &staff
		if note != "" {
			request.ResolutionNote = &note
		}

		if decision == DecisionReject {
			request.Status = models.RequestRejected
			return tx.Reschedules().Update(ctx, request)
		}

		session, err := tx.Sessions().GetByID(ctx, request.SessionID)
		if err != nil {
			return err
		}
		if session.TutorID == nil {
			return NewConflict("session has no tutor assigned yet")
		}
		free, err := tx.Sessions().IsTutorAvailable(ctx, *session.TutorID, request.StartTime, request.EndTime, session.ID)
		if err != nil {
			return err
		}
		if !free {
			return NewConflict("tutor is not available at the requested time")
		}

		contract, err := tx.Contracts().GetByID(ctx, request.ContractID)
		if err != nil {
			return err
		}
		if contract.RescheduleCount <= 0 {
			return NewConflict("reschedule budget for this contract is exhausted")
		}

		replacement := &models.ContractSession{
			ContractID:    session.ContractID,
			SessionNumber: session.SessionNumber,
			SessionDate:   request.RequestedDate,
			StartTime:     request.StartTime,
			EndTime:       request.EndTime,
			TutorID:       session.TutorID,
			Status:        models.SessionScheduled,
		}
		if err := tx.Sessions().AddMany(ctx, []*models.ContractSession{replacement}); err != nil {
			return err
		}

		session.Status = models.SessionRescheduled
		session.RescheduledToID = &replacement.ID
		if err := tx.Sessions().Update(ctx, session); err != nil {
			return err
		}

		contract.RescheduleCount--
		if err := tx.Contracts().Update(ctx, contract); err != nil {
			return err
		}

		request.Status = models.RequestApproved
		return tx.Reschedules().Update(ctx, request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}
