package payload

import (
	"strings"
	"time"
)

// prodID identifies this generator in emitted iCalendar blocks.
const prodID = "-//QR Lab//EN"

// Event describes a single iCalendar VEVENT. Start and End are floating local
// times: they are emitted without any timezone suffix or conversion and are
// interpreted as wall-clock time by the reader.
type Event struct {
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
}

func (Event) Kind() Kind { return KindEvent }

func buildEvent(e Event) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"BEGIN:VEVENT",
		"SUMMARY:" + e.Summary,
		"DTSTART:" + formatFloating(e.Start),
		"DTEND:" + formatFloating(e.End),
		"LOCATION:" + e.Location,
		"DESCRIPTION:" + escapeICalText(e.Description),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\n")
}

// formatFloating renders a floating local time as YYYYMMDDTHHMMSS.
func formatFloating(t time.Time) string {
	return t.Format("20060102T150405")
}

// escapeICalText replaces literal newlines with the two-character sequence
// backslash-n, per the iCalendar TEXT escaping convention.
func escapeICalText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}
