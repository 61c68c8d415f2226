package validator

import (
	"strings"
	"time"
)

// isoLayouts are the ISO-8601 shapes accepted for dates: a bare date, or a
// date and time at hour, minute or second precision, with an optional
// offset. Fractional seconds are accepted after the seconds field without a
// dedicated layout.
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	layouts := []string{"2006-01-02"}
	for _, sep := range []string{"T", " "} {
		for _, clock := range []string{"15", "15:04", "15:04:05"} {
			for _, offset := range []string{"", "Z07:00", "Z0700", "Z07"} {
				layouts = append(layouts, "2006-01-02"+sep+clock+offset)
			}
		}
	}
	return layouts
}

// validISODate reports whether value parses as an ISO-8601 date or
// date-time. A trailing UTC designator is rewritten as an explicit offset.
func validISODate(value string) bool {
	if rest, ok := strings.CutSuffix(value, "Z"); ok {
		value = rest + "+00:00"
	}
	for _, layout := range isoLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
