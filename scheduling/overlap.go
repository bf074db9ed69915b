package scheduling

import "time"

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not overlap: a 10:00-11:30 lesson and an
// 11:30-13:00 lesson can share a tutor.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// AnyOverlap checks a candidate interval against a set of existing
// intervals, skipping the one identified by excludeID (zero value skips
// nothing). Used when re-validating a reschedule so the session being moved
// does not conflict with itself.
func AnyOverlap(start, end time.Time, existing []Interval, excludeID string) bool {
	for _, iv := range existing {
		if excludeID != "" && iv.ID == excludeID {
			continue
		}
		if Overlaps(start, end, iv.Start, iv.End) {
			return true
		}
	}
	return false
}

type Interval struct {
	ID    string
	Start time.Time
	End   time.Time
}
