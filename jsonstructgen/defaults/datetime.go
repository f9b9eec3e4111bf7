package defaults

import (
	"strconv"
	"time"
)

// dateLayouts are tried in order after the epoch-millisecond form fails.
// They cover ISO-8601 with and without fraction and zone, bare dates and
// the RFC 1123 family.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
}

// parseDateToMillis reads text as epoch milliseconds, or failing that as a
// date-time string. Strings without a zone are read as UTC.
func parseDateToMillis(text string) (int64, error) {
	if ms, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ms, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, parseError("unable to parse this string as a date", text, nil)
}
