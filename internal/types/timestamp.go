package types

import "time"

// isoLayout matches the millisecond UTC timestamps already present in stored records.
const isoLayout = "2006-01-02T15:04:05.000Z"

// ISOTimestamp formats t as a UTC timestamp with millisecond precision.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
