package domain

import "time"

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether a and b share any instant. Intervals that only touch
// at an endpoint do not overlap, so back-to-back bookings are allowed.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// OverlapsAny reports whether iv overlaps at least one of the slots.
func OverlapsAny(iv Interval, slots []ScheduleSlot) bool {
	for _, slot := range slots {
		if Overlaps(slot.Interval(), iv) {
			return true
		}
	}
	return false
}
