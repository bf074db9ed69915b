package scheduling

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/anjiri1684/tutoring_center/models"
	"github.com/google/uuid"
)

func validCreateInput(childID, packageID uuid.UUID) CreateContractInput {
	return CreateContractInput{
		ParentID:       uuid.New(),
		ChildID:        childID,
		PackageID:      packageID,
		CenterID:       uuid.New(),
		StartDate:      date(2026, time.January, 5), // a Monday
		EndDate:        date(2026, time.January, 18),
		StartTime:      "16:00",
		EndTime:        "17:30",
		DaysOfWeekMask: int(Monday | Wednesday),
	}
}

func TestCreateContract(t *testing.T) {
	store := newMemStores()
	pkg := store.addPackage(&models.Package{Name: "Starter", SessionCount: 3, MaxReschedule: 2})
	service := NewContractService(store)
	childID := uuid.New()

	contract, err := service.Create(context.Background(), validCreateInput(childID, pkg.ID))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if contract.Status != models.ContractPending {
		t.Errorf("status = %s, want pending", contract.Status)
	}
	if contract.SessionCount != 3 {
		t.Errorf("session count = %d, want 3", contract.SessionCount)
	}
	if contract.RescheduleCount != 2 {
		t.Errorf("reschedule count = %d, want 2", contract.RescheduleCount)
	}
	if contract.ContractNumber == "" {
		t.Error("contract number not set")
	}

	sessions, _ := store.Sessions().GetByContract(context.Background(), contract.ID)
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].SessionDate.Before(sessions[j].SessionDate) })
	wantDates := []time.Time{
		date(2026, time.January, 5),
		date(2026, time.January, 7),
		date(2026, time.January, 12),
	}
	for i, session := range sessions {
		if session.Status != models.SessionScheduled {
			t.Errorf("session %d status = %s, want scheduled", i, session.Status)
		}
		if !session.SessionDate.Equal(wantDates[i]) {
			t.Errorf("session %d date = %v, want %v", i, session.SessionDate, wantDates[i])
		}
	}
}

func TestCreateContractValidation(t *testing.T) {
	store := newMemStores()
	pkg := store.addPackage(&models.Package{SessionCount: 3, MaxReschedule: 2})
	service := NewContractService(store)

	tests := []struct {
		name   string
		mutate func(*CreateContractInput)
	}{
		{"zero mask", func(in *CreateContractInput) { in.DaysOfWeekMask = 0 }},
		{"mask over 127", func(in *CreateContractInput) { in.DaysOfWeekMask = 200 }},
		{"end time not start plus ninety", func(in *CreateContractInput) { in.EndTime = "18:00" }},
		{"unparseable start time", func(in *CreateContractInput) { in.StartTime = "16h00" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput(uuid.New(), pkg.ID)
			tt.mutate(&in)
			_, err := service.Create(context.Background(), in)
			if !IsValidation(err) {
				t.Errorf("Create() error = %v, want validation kind", err)
			}
		})
	}
}

func TestCreateContractMissingPackage(t *testing.T) {
	store := newMemStores()
	service := NewContractService(store)

	_, err := service.Create(context.Background(), validCreateInput(uuid.New(), uuid.New()))
	if !IsNotFound(err) {
		t.Errorf("Create() error = %v, want not-found kind", err)
	}
}

func TestCreateContractOverlap(t *testing.T) {
	store := newMemStores()
	pkg := store.addPackage(&models.Package{SessionCount: 3, MaxReschedule: 2})
	service := NewContractService(store)
	childID := uuid.New()

	if _, err := service.Create(context.Background(), validCreateInput(childID, pkg.ID)); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	// Same child, same window: conflict.
	_, err := service.Create(context.Background(), validCreateInput(childID, pkg.ID))
	if !IsConflict(err) {
		t.Errorf("overlapping Create() error = %v, want conflict kind", err)
	}

	// Same dates and time but disjoint weekday mask: no conflict.
	in := validCreateInput(childID, pkg.ID)
	in.DaysOfWeekMask = int(Tuesday | Thursday)
	if _, err := service.Create(context.Background(), in); err != nil {
		t.Errorf("disjoint-mask Create() error = %v, want success", err)
	}

	// A different child is never gated by this child's calendar.
	if _, err := service.Create(context.Background(), validCreateInput(uuid.New(), pkg.ID)); err != nil {
		t.Errorf("other-child Create() error = %v, want success", err)
	}
}

func TestCreateContractCapacity(t *testing.T) {
	store := newMemStores()
	pkg := store.addPackage(&models.Package{SessionCount: 10, MaxReschedule: 2})
	service := NewContractService(store)

	in := validCreateInput(uuid.New(), pkg.ID)
	in.DaysOfWeekMask = int(Monday)
	_, err := service.Create(context.Background(), in)
	if !IsCapacity(err) {
		t.Fatalf("Create() error = %v, want capacity kind", err)
	}

	// Nothing may be persisted on a capacity failure.
	if len(store.contracts) != 0 || len(store.sessions) != 0 {
		t.Errorf("store has %d contracts and %d sessions after failed create, want none",
			len(store.contracts), len(store.sessions))
	}
}

func mustCreateActiveContract(t *testing.T, store *memStores, service *ContractService, pkg *models.Package) *models.Contract {
	t.Helper()
	contract, err := service.Create(context.Background(), validCreateInput(uuid.New(), pkg.ID))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	contract, err = service.UpdateStatus(context.Background(), contract.ID, models.ContractActive)
	if err != nil {
		t.Fatalf("UpdateStatus(active) error = %v", err)
	}
	return contract
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		wantKind Kind
	}{
		{name: "pending to active", from: models.ContractPending, to: models.ContractActive},
		{name: "pending to cancelled", from: models.ContractPending, to: models.ContractCancelled},
		{name: "active to completed", from: models.ContractActive, to: models.ContractCompleted},
		{name: "active to cancelled", from: models.ContractActive, to: models.ContractCancelled},
		{name: "pending to completed", from: models.ContractPending, to: models.ContractCompleted, wantKind: KindConflict},
		{name: "cancelled to active", from: models.ContractCancelled, to: models.ContractActive, wantKind: KindConflict},
		{name: "completed to active", from: models.ContractCompleted, to: models.ContractActive, wantKind: KindConflict},
		{name: "no-op transition", from: models.ContractActive, to: models.ContractActive, wantKind: KindConflict},
		{name: "unknown status", from: models.ContractActive, to: "paused", wantKind: KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStores()
			service := NewContractService(store)
			contract := &models.Contract{ID: uuid.New(), Status: tt.from}
			store.contracts[contract.ID] = contract

			updated, err := service.UpdateStatus(context.Background(), contract.ID, tt.to)
			if tt.wantKind == 0 {
				if err != nil {
					t.Fatalf("UpdateStatus() error = %v", err)
				}
				if updated.Status != tt.to {
					t.Errorf("status = %s, want %s", updated.Status, tt.to)
				}
				return
			}
			if !HasKind(err, tt.wantKind) {
				t.Errorf("UpdateStatus() error = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}

func TestCancelCascades(t *testing.T) {
	store := newMemStores()
	pkg := store.addPackage(&models.Package{SessionCount: 3, MaxReschedule: 2})
	service := NewContractService(store)
	contract := mustCreateActiveContract(t, store, service, pkg)

	sessions, _ := store.Sessions().GetByContract(context.Background(), contract.ID)
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].SessionDate.Before(sessions[j].SessionDate) })
	sessions[1].Status = models.SessionDone
	sessions[2].Status = models.SessionRescheduled

	if _, err := service.UpdateStatus(context.Background(), contract.ID, models.ContractCancelled); err != nil {
		t.Fatalf("UpdateStatus(cancelled) error = %v", err)
	}

	after, _ := store.Sessions().GetByContract(context.Background(), contract.ID)
	sort.Slice(after, func(i, j int) bool { return after[i].SessionDate.Before(after[j].SessionDate) })
	want := []string{models.SessionCancelled, models.SessionDone, models.SessionCancelled}
	for i, session := range after {
		if session.Status != want[i] {
			t.Errorf("session %d status = %s, want %s", i, session.Status, want[i])
		}
	}

	// Cancelled is terminal.
	_, err := service.UpdateStatus(context.Background(), contract.ID, models.ContractActive)
	if !IsConflict(err) {
		t.Errorf("reactivation error = %v, want conflict kind", err)
	}
}

func TestAssignTutors(t *testing.T) {
	store := newMemStores()
	pkg := store.addPackage(&models.Package{SessionCount: 3, MaxReschedule: 2})
	service := NewContractService(store)
	contract := mustCreateActiveContract(t, store, service, pkg)
	tutorID := uuid.New()

	if _, err := service.AssignTutors(context.Background(), contract.ID, uuid.Nil, nil); !IsValidation(err) {
		t.Errorf("nil tutor error = %v, want validation kind", err)
	}

	updated, err := service.AssignTutors(context.Background(), contract.ID, tutorID, nil)
	if err != nil {
		t.Fatalf("AssignTutors() error = %v", err)
	}
	if updated.MainTutorID == nil || *updated.MainTutorID != tutorID {
		t.Errorf("main tutor = %v, want %s", updated.MainTutorID, tutorID)
	}

	sessions, _ := store.Sessions().GetByContract(context.Background(), contract.ID)
	for i, session := range sessions {
		if session.TutorID == nil || *session.TutorID != tutorID {
			t.Errorf("session %d tutor = %v, want %s", i, session.TutorID, tutorID)
		}
	}

	// No assignment on a cancelled contract.
	if _, err := service.UpdateStatus(context.Background(), contract.ID, models.ContractCancelled); err != nil {
		t.Fatalf("UpdateStatus(cancelled) error = %v", err)
	}
	if _, err := service.AssignTutors(context.Background(), contract.ID, tutorID, nil); !IsConflict(err) {
		t.Errorf("assign on cancelled error = %v, want conflict kind", err)
	}
}
