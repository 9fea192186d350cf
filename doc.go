// Package qrlab ties payload formatting, QR rendering, and logo compositing
// into a single generation API.
//
// A generation call produces an explicit Result value — there is no implicit
// shared "last payload" state. Session adds the one piece of state the
// interactive tool needs: it remembers the last successful Result so the
// exports can be re-downloaded without re-formatting the payload.
//
//	session := qrlab.NewSession()
//
//	res, err := session.Generate(
//		payload.WiFi{SSID: "Home", Password: "pw", Auth: payload.AuthWPA},
//		render.DefaultOptions(),
//		&overlay.Logo{Image: logoImg, ScaleFraction: 0.22, RoundMask: true},
//	)
//	if err != nil {
//		// blank payload or encoding failure; nothing was generated
//	}
//
//	export, err := res.PNG()
//	// export.Data, export.MIME ("image/png"), export.Filename ("qr.png");
//	// export.Warning is set when the logo could not be applied and the
//	// plain QR raster was returned instead.
//
// SVG and PDF exports never include the logo overlay; only the raster path
// composites it.
package qrlab
