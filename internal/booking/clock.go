package booking

import "time"

// ParseStamp parses a timestamp string into an absolute UTC instant.  The
// input must be RFC 3339, which makes the UTC offset mandatory ("Z" or
// ±hh:mm); a naive timestamp such as "2026-06-10T10:00:00" does not parse
// and is rejected with ErrMalformedTime, as is any string that is not a
// valid calendar date-time.  The result is normalized to UTC so that
// instants supplied with different offsets compare equal when they denote
// the same moment.
func ParseStamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrMalformedTime
	}
	return t.UTC(), nil
}

// YearOf returns the UTC calendar year containing the instant.
func YearOf(t time.Time) int {
	return t.UTC().Year()
}
