package utils

import "time"

// FormatTimestamp renders t in loc with the given layout. A nil loc means local time.
func FormatTimestamp(t time.Time, loc *time.Location, layout string) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(layout)
}
