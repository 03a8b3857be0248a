// Package dates converts between time.Time and the compact yyyyMMdd form used
// by the ranking endpoints.
package dates

import (
	"fmt"
	"time"
)

// Layout is the compact date layout.
const Layout = "20060102"

// Format renders t as yyyyMMdd in t's own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a yyyyMMdd string as local midnight.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// AddDays shifts t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// Yesterday returns the calendar day before now, truncated to midnight in
// now's location.
func Yesterday(now time.Time) time.Time {
	y, m, d := now.Date()
	return AddDays(time.Date(y, m, d, 0, 0, 0, 0, now.Location()), -1)
}
