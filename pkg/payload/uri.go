package payload

import (
	"strconv"
	"strings"
)

// Email describes a mailto: payload with an optional prefilled subject and
// body.
type Email struct {
	To      string
	Subject string
	Body    string
}

func (Email) Kind() Kind { return KindEmail }

func buildEmail(e Email) string {
	var qs []string
	if e.Subject != "" {
		qs = append(qs, "subject="+percentEncode(e.Subject))
	}
	if e.Body != "" {
		qs = append(qs, "body="+percentEncode(e.Body))
	}
	if len(qs) == 0 {
		return "mailto:" + e.To
	}
	return "mailto:" + e.To + "?" + strings.Join(qs, "&")
}

// SMS describes an SMSTO: payload. The message part is always emitted, even
// when empty: SMSTO:<number>:<message>.
type SMS struct {
	Number  string
	Message string
}

func (SMS) Kind() Kind { return KindSMS }

func buildSMS(s SMS) string {
	return "SMSTO:" + s.Number + ":" + s.Message
}

// Phone describes a tel: payload. The number is passed through unvalidated.
type Phone struct {
	Number string
}

func (Phone) Kind() Kind { return KindPhone }

func buildPhone(p Phone) string {
	return "tel:" + p.Number
}

// Geo describes a geo: URI with an optional human-readable label.
type Geo struct {
	Latitude  float64
	Longitude float64
	Label     string
}

func (Geo) Kind() Kind { return KindGeo }

// buildGeo formats coordinates in shortest round-trip decimal form, so
// -74.0060 renders as -74.006.
func buildGeo(g Geo) string {
	s := "geo:" + formatCoord(g.Latitude) + "," + formatCoord(g.Longitude)
	if g.Label != "" {
		s += "?q=" + percentEncode(g.Label)
	}
	return s
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
