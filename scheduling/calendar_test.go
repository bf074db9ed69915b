package scheduling

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSessionsMonWed(t *testing.T) {
	// 2026-01-05 is a Monday.
	slots, err := GenerateSessions(date(2026, time.January, 5), date(2026, time.January, 18),
		"16:00", "17:30", Monday|Wednesday, 3)
	if err != nil {
		t.Fatalf("GenerateSessions() error = %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}

	wantDates := []time.Time{
		date(2026, time.January, 5),
		date(2026, time.January, 7),
		date(2026, time.January, 12),
	}
	for i, slot := range slots {
		if !slot.Date.Equal(wantDates[i]) {
			t.Errorf("slot %d date = %v, want %v", i, slot.Date, wantDates[i])
		}
		if slot.Start.Hour() != 16 || slot.Start.Minute() != 0 {
			t.Errorf("slot %d start = %v, want 16:00", i, slot.Start)
		}
		if slot.End.Sub(slot.Start) != SessionDuration {
			t.Errorf("slot %d duration = %v, want %v", i, slot.End.Sub(slot.Start), SessionDuration)
		}
	}
}

func TestGenerateSessionsProperties(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		mask  DayMask
		count int
	}{
		{"weekdays over a month", date(2026, time.March, 2), date(2026, time.March, 31), Monday | Tuesday | Wednesday | Thursday | Friday, 12},
		{"saturdays only", date(2026, time.February, 1), date(2026, time.March, 31), Saturday, 6},
		{"every day", date(2026, time.June, 1), date(2026, time.June, 30), maskAllDays, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSessions(tt.start, tt.end, "16:00", "17:30", tt.mask, tt.count)
			if err != nil {
				t.Fatalf("GenerateSessions() error = %v", err)
			}
			if len(slots) != tt.count {
				t.Fatalf("got %d slots, want %d", len(slots), tt.count)
			}
			for i, slot := range slots {
				if !tt.mask.Contains(slot.Date.Weekday()) {
					t.Errorf("slot %d on %v, weekday not in mask", i, slot.Date)
				}
				if i > 0 && !slots[i-1].Date.Before(slot.Date) {
					t.Errorf("slot dates not strictly increasing at %d: %v then %v", i, slots[i-1].Date, slot.Date)
				}
			}
		})
	}
}

func TestGenerateSessionsCapacity(t *testing.T) {
	// One week holds at most one Monday.
	_, err := GenerateSessions(date(2026, time.January, 5), date(2026, time.January, 11),
		"16:00", "17:30", Monday, 3)
	if err == nil {
		t.Fatal("expected capacity error")
	}
	if !IsCapacity(err) {
		t.Errorf("error = %v, want capacity kind", err)
	}
}

func TestGenerateSessionsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		count     int
	}{
		{"zero count", "16:00", "17:30", 0},
		{"bad start time", "4pm", "17:30", 3},
		{"bad end time", "16:00", "later", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessions(date(2026, time.January, 5), date(2026, time.January, 30),
				tt.startTime, tt.endTime, Monday, tt.count)
			if !IsValidation(err) {
				t.Errorf("error = %v, want validation kind", err)
			}
		})
	}
}

func TestValidateSessionWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "exact ninety minutes", start: "16:00", end: "17:30"},
		{name: "morning slot", start: "09:15", end: "10:45"},
		{name: "too short", start: "16:00", end: "17:00", wantErr: true},
		{name: "too long", start: "16:00", end: "18:00", wantErr: true},
		{name: "end before start", start: "16:00", end: "14:30", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionWindow(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSessionWindow(%s, %s) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}
