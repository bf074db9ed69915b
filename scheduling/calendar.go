package scheduling

import "time"

// SessionDuration is the fixed length of every lesson. Contract end times
// must equal start time plus this duration exactly.
const SessionDuration = 90 * time.Minute

// SessionSlot is one generated lesson occurrence.
type SessionSlot struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

// GenerateSessions walks the date range inclusive, in date order, and emits
// one slot per date whose weekday is in the mask, stopping once
// sessionCount slots exist. It is a pure function: no store access, fully
// deterministic. If the range runs out before sessionCount qualifying days
// are found it fails with a capacity error and emits nothing.
func GenerateSessions(startDate, endDate time.Time, startTime, endTime string, mask DayMask, sessionCount int) ([]SessionSlot, error) {
	if sessionCount <= 0 {
		return nil, NewValidation("session count must be positive, got %d", sessionCount)
	}
	startClock, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	endClock, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}

	start := truncateToDate(startDate)
	end := truncateToDate(endDate)
	if end.Before(start) {
		return nil, NewValidation("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	slots := make([]SessionSlot, 0, sessionCount)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !mask.Contains(d.Weekday()) {
			continue
		}
		slots = append(slots, SessionSlot{
			Date:  d,
			Start: startClock.on(d),
			End:   endClock.on(d),
		})
		if len(slots) == sessionCount {
			return slots, nil
		}
	}
	return nil, NewCapacity("date range %s..%s has only %d qualifying %v days, need %d",
		start.Format("2006-01-02"), end.Format("2006-01-02"), len(slots), mask.Days(), sessionCount)
}

// clock is a time of day.
type clock struct {
	hour, minute int
}

// parseClock parses a "15:04" time-of-day string.
func parseClock(s string) (clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return clock{}, NewValidation("invalid time of day %q, want HH:MM", s)
	}
	return clock{hour: t.Hour(), minute: t.Minute()}, nil
}

func (c clock) on(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.hour, c.minute, 0, 0, date.Location())
}

func (c clock) minutes() int { return c.hour*60 + c.minute }

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateSessionWindow checks that end is exactly start + SessionDuration.
func ValidateSessionWindow(startTime, endTime string) error {
	start, err := parseClock(startTime)
	if err != nil {
		return err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return err
	}
	if end.minutes()-start.minutes() != int(SessionDuration/time.Minute) {
		return NewValidation("end time %s must be exactly %d minutes after start time %s",
			endTime, int(SessionDuration/time.Minute), startTime)
	}
	return nil
}
