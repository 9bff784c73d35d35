package metrics

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/phrazzld/fitcore/internal/domain"
)

const dateLayout = "2006-01-02"

// ProgressPercentage returns current as a whole percentage of target, capped
// at 100. A zero target yields 0. Negative values are not clamped.
func ProgressPercentage(current, target float64) int {
	if target == 0 {
		return 0
	}
	return int(math.Min(100, math.Round(current/target*100)))
}

// StreakDays counts consecutive days with an entry, ending on the calendar
// date of today. Dates are walked newest first; the streak grows while the
// next date is exactly one day earlier and stops at the first gap. Several
// entries on the same day count once.
func StreakDays(dates []string, today time.Time) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}

	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		d, err := parseDate(s)
		if err != nil {
			return 0, err
		}
		days = append(days, calendarDay(d))
	}
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })
	days = slices.Compact(days)

	expected := calendarDay(today)
	streak := 0
	for _, d := range days {
		if !d.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak, nil
}

// parseDate accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, domain.ErrInvalidDate)
	}
	return t, nil
}

// calendarDay drops the clock and zone of t, keeping the date as written.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
