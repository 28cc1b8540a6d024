package csvparse

import (
	"testing"
	"time"

	"github.com/pennypilot/pennypilot/internal/bankformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"ISO", "2024-03-15", date(2024, time.March, 15)},
		{"ISO with time", "2024-03-15T10:30:00", date(2024, time.March, 15)},
		{"day first slash", "15/03/2024", date(2024, time.March, 15)},
		{"day first dash", "15-03-2024", date(2024, time.March, 15)},
		{"day first dot", "15.03.2024", date(2024, time.March, 15)},
		{"ambiguous defaults to day first", "05/03/2024", date(2024, time.March, 5)},
		{"month first when day over twelve", "03/15/2024", date(2024, time.March, 15)},
		{"two digit year windowed", "15/03/24", date(2024, time.March, 15)},
		{"year first numeric", "2024/03/15", date(2024, time.March, 15)},
		{"day month name", "15 Mar 2024", date(2024, time.March, 15)},
		{"single digit day month name", "5 Mar 2024", date(2024, time.March, 5)},
		{"month name with comma", "Mar 15, 2024", date(2024, time.March, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.raw, bankformat.DateAuto)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"prose", "not a date"},
		{"nonexistent day", "31/02/2024"},
		{"month thirteen both tokens", "13/13/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDate(tt.raw, bankformat.DateAuto)
			assert.Error(t, err)
		})
	}
}

func TestParseDate_StyleHint(t *testing.T) {
	// The hint is tried first but a mismatched hint still parses via the
	// cascade.
	got, err := parseDate("2024-03-15", bankformat.DateDayFirst)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 15), got)

	got, err = parseDate("15/03/2024", bankformat.DateISO)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 15), got)
}
