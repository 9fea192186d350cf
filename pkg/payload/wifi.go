package payload

import "strings"

// Auth is a Wi-Fi authentication mode as emitted in the WIFI: payload.
type Auth string

const (
	AuthWEP    Auth = "WEP"
	AuthWPA    Auth = "WPA"
	AuthNoPass Auth = "NOPASS"
)

// NormalizeAuth maps a free-form authentication string to one of the three
// supported modes. Matching is case-insensitive; "WPA2" collapses to WPA and
// anything unrecognized falls back to WPA. This fallback is deliberate and is
// not surfaced as an error.
func NormalizeAuth(s string) Auth {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WEP":
		return AuthWEP
	case "WPA", "WPA2":
		return AuthWPA
	case "NOPASS":
		return AuthNoPass
	default:
		return AuthWPA
	}
}

// WiFi holds network credentials for a WIFI: configuration payload.
type WiFi struct {
	SSID     string
	Password string
	Auth     Auth
	Hidden   bool
}

func (WiFi) Kind() Kind { return KindWiFi }

// buildWiFi emits WIFI:T:<auth>;S:<ssid>;P:<password>;H:<true|false>;;.
// The password field is always present, even for open networks.
func buildWiFi(w WiFi) string {
	auth := "WPA"
	switch NormalizeAuth(string(w.Auth)) {
	case AuthWEP:
		auth = "WEP"
	case AuthNoPass:
		auth = "nopass"
	}
	hidden := "false"
	if w.Hidden {
		hidden = "true"
	}
	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(auth)
	b.WriteString(";S:")
	b.WriteString(EscapeField(w.SSID))
	b.WriteString(";P:")
	b.WriteString(EscapeField(w.Password))
	b.WriteString(";H:")
	b.WriteString(hidden)
	b.WriteString(";;")
	return b.String()
}

// EscapeField escapes a value for embedding in a WIFI: payload field.
// Backslash must be escaped first or the following replacements would be
// double-escaped.
func EscapeField(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `;`, `\;`)
	s = strings.ReplaceAll(s, `,`, `\,`)
	return s
}

// UnescapeField inverts EscapeField, recovering the original value exactly.
func UnescapeField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\', ';', ',':
				i++
				b.WriteByte(s[i])
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
