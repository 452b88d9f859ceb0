package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStampNormalizesToUTC(t *testing.T) {
	got, err := ParseStamp("2026-06-10T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())

	z, err := ParseStamp("2026-06-10T08:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(z), "same instant through different offsets")
}

func TestParseStampRejectsNaive(t *testing.T) {
	_, err := ParseStamp("2026-06-10T10:00:00")
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestParseStampRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "tomorrow", "2026-13-01T00:00:00Z", "2026-06-10"} {
		_, err := ParseStamp(raw)
		assert.ErrorIs(t, err, ErrMalformedTime, "input %q", raw)
	}
}

func TestYearOf(t *testing.T) {
	// 2027-01-01T01:30+02:00 is 2026-12-31T23:30Z, so the UTC calendar
	// year is still 2026 even though the local year is 2027.
	ts, err := ParseStamp("2027-01-01T01:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, 2026, YearOf(ts))

	assert.Equal(t, 2026, YearOf(time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, 2027, YearOf(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
