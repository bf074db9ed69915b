package scheduling

import "time"

// DayMask is a 7-bit weekday set: bit 0 = Monday ... bit 6 = Sunday.
// The same mapping is used for session generation and for display names,
// so the convention lives here and nowhere else.
type DayMask uint8

const (
	Monday DayMask = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const maskAllDays = DayMask(127)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// NewDayMask validates a raw mask value as received from a caller.
func NewDayMask(raw int) (DayMask, error) {
	if raw <= 0 || raw > int(maskAllDays) {
		return 0, NewValidation("days of week mask must be between 1 and 127, got %d", raw)
	}
	return DayMask(raw), nil
}

// Contains reports whether the weekday of the standard library calendar is
// in the set. time.Weekday counts Sunday=0; the mask counts Monday=0.
func (m DayMask) Contains(wd time.Weekday) bool {
	bit := (int(wd) + 6) % 7
	return m&(1<<bit) != 0
}

func (m DayMask) Intersects(other DayMask) bool {
	return m&other != 0
}

// Days returns the weekday names in the set, Monday first.
func (m DayMask) Days() []string {
	var days []string
	for i := 0; i < 7; i++ {
		if m&(1<<i) != 0 {
			days = append(days, dayNames[i])
		}
	}
	return days
}

// WeekdayName is the display name for a standard library weekday, under
// the same Monday-first convention as the mask.
func WeekdayName(wd time.Weekday) string {
	return dayNames[(int(wd)+6)%7]
}

// Count returns how many weekdays are in the set.
func (m DayMask) Count() int {
	n := 0
	for i := 0; i < 7; i++ {
		if m&(1<<i) != 0 {
			n++
		}
	}
	return n
}
