package helper

import (
	"context"
	"time"

	"leave_manager/model"
)

// HolidayCalendar supplies active holidays for working-day exclusion and
// conflict reporting.
type HolidayCalendar interface {
	ActiveHolidays(ctx context.Context, from, to time.Time) ([]model.Holiday, error)
}

// WorkdayCalculator counts business days: weekends and active holidays do
// not count.
type WorkdayCalculator struct {
	Holidays HolidayCalendar
}

// CountWorkingDays returns the number of working days between start and end
// inclusive.
func (w *WorkdayCalculator) CountWorkingDays(ctx context.Context, start, end time.Time) (float64, error) {
	start = Midnight(start)
	end = Midnight(end)
	if end.Before(start) {
		return 0, nil
	}

	holidays, err := w.Holidays.ActiveHolidays(ctx, start, end)
	if err != nil {
		return 0, err
	}
	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date.Format("2006-01-02")] = true
	}

	count := 0.0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if holidaySet[d.Format("2006-01-02")] {
			continue
		}
		count++
	}
	return count, nil
}

// Midnight truncates to the calendar day so time-of-day noise never leaks
// into day arithmetic.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
