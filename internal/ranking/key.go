// Package ranking reads the daily/weekly/monthly/quarterly rankings, a
// novel's ranking history, and joins ranking rows with novel details.
package ranking

import (
	"fmt"
	"strings"
	"time"

	"github.com/lepinkainen/narou/internal/dates"
	"github.com/lepinkainen/narou/internal/params"
)

// FormatKey builds the rtype value for a ranking: yyyyMMdd-<type>.
func FormatKey(date time.Time, t params.RankingType) string {
	return dates.Format(date) + "-" + string(t)
}

// ParseKey splits an rtype value back into its date and type.
func ParseKey(key string) (time.Time, params.RankingType, error) {
	datePart, typePart, ok := strings.Cut(key, "-")
	if !ok {
		return time.Time{}, "", fmt.Errorf("invalid ranking key %q: missing type", key)
	}
	t := params.RankingType(typePart)
	if !t.Valid() {
		return time.Time{}, "", fmt.Errorf("invalid ranking key %q: unknown type %q", key, typePart)
	}
	date, err := dates.Parse(datePart)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid ranking key %q: %w", key, err)
	}
	return date, t, nil
}
