package domain

import (
	"fmt"
	"time"
)

// DateRange is an inclusive calendar-date window. Immutable once built.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds a range, rejecting windows whose start is after their
// end.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if from.After(to) {
		return DateRange{}, fmt.Errorf("from date %s is after to date %s",
			from.Format(DateLayout), to.Format(DateLayout))
	}
	return DateRange{From: from, To: to}, nil
}

// PreviousMonth returns the full calendar month before the one containing
// now. Used as the default window when no bounds are configured.
func PreviousMonth(now time.Time) DateRange {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{
		From: firstOfMonth.AddDate(0, -1, 0),
		To:   firstOfMonth.AddDate(0, 0, -1),
	}
}

// Contains reports whether d falls inside the range, inclusive of both
// endpoints.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.From) && !d.After(r.To)
}
