// Package payload converts typed QR content values into the exact textual
// encoding each consuming standard expects (Wi-Fi network config, mailto and
// tel URIs, SMSTO, geo URIs, vCard 3.0, iCalendar events, or plain text).
//
// # Architecture
//
// Content is a sealed tagged union: every supported content type is a struct
// implementing the Content interface, and Build is an exhaustive switch over
// the variants. Builders are pure functions — identical input always yields a
// byte-identical string, there is no validation and no failure mode. Malformed
// or empty field values produce a syntactically valid but semantically empty
// payload; rejecting blank payloads before encoding is the caller's job.
//
// # Usage
//
//	import "github.com/qrlab/qrlab/pkg/payload"
//
//	wifi := payload.WiFi{
//		SSID:     "Home",
//		Password: "pw123",
//		Auth:     payload.NormalizeAuth("wpa2"), // -> AuthWPA
//	}
//	s := payload.Build(wifi)
//	// WIFI:T:WPA;S:Home;P:pw123;H:false;;
//
// # Escaping
//
// Wi-Fi SSID and password fields escape backslash, semicolon and comma (in
// that order, backslash first). UnescapeField inverts the transformation, so
// the encoding is lossless for any input. mailto query parameters and geo
// labels are percent-encoded with %20 for spaces.
package payload
