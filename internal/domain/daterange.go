package domain

import (
	"fmt"
	"time"
)

// DateRange полуинтервал дат [Start, End)
// День выезда не входит в диапазон, поэтому брони "встык" не пересекаются
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange создает диапазон, End должен быть строго позже Start
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: DateOnly(start), End: DateOnly(end)}
	if !r.End.After(r.Start) {
		return DateRange{}, fmt.Errorf("%w: %s - %s", ErrInvalidDateRange,
			r.Start.Format(DateFormat), r.End.Format(DateFormat))
	}
	return r, nil
}

// Overlaps [a,b) и [c,d) пересекаются тогда и только тогда, когда a < d и c < b
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Nights количество ночей в диапазоне
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}

// DateOnly отбрасывает время, оставляя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
