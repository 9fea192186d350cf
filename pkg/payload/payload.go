package payload

import (
	"net/url"
	"strings"
)

// Kind identifies a QR content type.
type Kind string

const (
	KindText  Kind = "text"
	KindWiFi  Kind = "wifi"
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
	KindPhone Kind = "phone"
	KindGeo   Kind = "geo"
	KindVCard Kind = "vcard"
	KindEvent Kind = "event"
)

// Content is the sealed union of all supported QR content types. Each variant
// carries its own field set and reports its Kind.
type Content interface {
	Kind() Kind
}

// Text is a free-form payload (URL or arbitrary text) encoded verbatim.
type Text struct {
	Text string
}

func (Text) Kind() Kind { return KindText }

// Build returns the textual QR encoding for the given content. The mapping is
// deterministic and total: it never fails, and repeated calls with identical
// input return byte-identical strings.
func Build(c Content) string {
	switch v := c.(type) {
	case Text:
		return v.Text
	case WiFi:
		return buildWiFi(v)
	case Email:
		return buildEmail(v)
	case SMS:
		return buildSMS(v)
	case Phone:
		return buildPhone(v)
	case Geo:
		return buildGeo(v)
	case VCard:
		return buildVCard(v)
	case Event:
		return buildEvent(v)
	default:
		// Content is sealed; an unknown variant means a programming error in
		// this package, not caller input.
		return ""
	}
}

// percentEncode escapes s for use in a URI query component, encoding spaces
// as %20 rather than '+'.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
