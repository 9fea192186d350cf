package api

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/qrlab/qrlab"
	"github.com/qrlab/qrlab/pkg/logger"
	"github.com/qrlab/qrlab/pkg/overlay"
	"github.com/qrlab/qrlab/pkg/payload"
	"github.com/qrlab/qrlab/pkg/render"
)

// maxFormMemory bounds the in-memory portion of a multipart upload; logos are
// at most a few megabytes.
const maxFormMemory = 8 << 20

const defaultLogoScale = 0.22

type generateResponse struct {
	ID      string `json:"id"`
	Payload string `json:"payload"`
	Preview string `json:"preview_png"`
	Warning string `json:"warning,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		// Plain form posts without a logo are fine too.
		if !errors.Is(err, http.ErrNotMultipart) {
			writeError(w, http.StatusBadRequest, "malformed form: "+err.Error())
			return
		}
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "malformed form: "+err.Error())
			return
		}
	}

	content, err := contentFromForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts, err := s.optionsFromForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logo, logoWarning := s.logoFromForm(r)

	res, err := s.Session.Generate(content, opts, logo)
	if err != nil {
		if errors.Is(err, qrlab.ErrEmptyPayload) {
			writeError(w, http.StatusBadRequest, "please enter content to encode")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	export, err := res.PNG()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	warning := logoWarning
	if export.Warning != "" {
		warning = strings.TrimSpace(warning + " " + export.Warning)
	}
	s.Log.Info("generated QR code",
		logger.Component("api"),
		slog.Int("payload_bytes", len(res.Payload())),
	)

	writeJSON(w, http.StatusOK, generateResponse{
		ID:      res.ID().String(),
		Payload: res.Payload(),
		Preview: base64.StdEncoding.EncodeToString(export.Data),
		Warning: warning,
	})
}

// contentFromForm maps the type selector and its field set onto a payload
// variant.
func contentFromForm(r *http.Request) (payload.Content, error) {
	switch kind := r.FormValue("type"); payload.Kind(kind) {
	case payload.KindText, payload.Kind(""):
		return payload.Text{Text: r.FormValue("text")}, nil
	case payload.KindWiFi:
		return payload.WiFi{
			SSID:     r.FormValue("ssid"),
			Password: r.FormValue("password"),
			Auth:     payload.NormalizeAuth(r.FormValue("auth")),
			Hidden:   formBool(r, "hidden"),
		}, nil
	case payload.KindEmail:
		return payload.Email{
			To:      r.FormValue("to"),
			Subject: r.FormValue("subject"),
			Body:    r.FormValue("body"),
		}, nil
	case payload.KindSMS:
		return payload.SMS{Number: r.FormValue("number"), Message: r.FormValue("message")}, nil
	case payload.KindPhone:
		return payload.Phone{Number: r.FormValue("number")}, nil
	case payload.KindGeo:
		lat, err := strconv.ParseFloat(r.FormValue("lat"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude %q", r.FormValue("lat"))
		}
		lon, err := strconv.ParseFloat(r.FormValue("lon"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude %q", r.FormValue("lon"))
		}
		return payload.Geo{Latitude: lat, Longitude: lon, Label: r.FormValue("label")}, nil
	case payload.KindVCard:
		return payload.VCard{
			GivenName:  r.FormValue("given"),
			FamilyName: r.FormValue("family"),
			Phone:      r.FormValue("phone"),
			Email:      r.FormValue("email"),
			Org:        r.FormValue("org"),
			Title:      r.FormValue("title"),
			URL:        r.FormValue("url"),
		}, nil
	case payload.KindEvent:
		start, err := formTime(r, "start")
		if err != nil {
			return nil, err
		}
		end, err := formTime(r, "end")
		if err != nil {
			return nil, err
		}
		return payload.Event{
			Summary:     r.FormValue("summary"),
			Location:    r.FormValue("location"),
			Description: r.FormValue("description"),
			Start:       start,
			End:         end,
		}, nil
	default:
		return nil, fmt.Errorf("unknown content type %q", kind)
	}
}

// optionsFromForm resolves a named preset or the individual style fields,
// starting from the defaults.
func (s *Server) optionsFromForm(r *http.Request) (render.Options, error) {
	if name := r.FormValue("preset"); name != "" {
		opts, ok := s.Presets[name]
		if !ok {
			return render.Options{}, fmt.Errorf("unknown preset %q", name)
		}
		return opts, nil
	}

	opts := render.DefaultOptions()
	if v := r.FormValue("level"); v != "" {
		lvl, err := render.ParseLevel(v)
		if err != nil {
			return render.Options{}, err
		}
		opts.Level = lvl
	}
	if v := r.FormValue("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return render.Options{}, fmt.Errorf("invalid module scale %q", v)
		}
		opts.ModuleScale = n
	}
	if v := r.FormValue("border"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return render.Options{}, fmt.Errorf("invalid quiet zone %q", v)
		}
		opts.QuietZone = n
	}
	if v := r.FormValue("fg"); v != "" {
		c, err := render.ParseHexColor(v)
		if err != nil {
			return render.Options{}, err
		}
		opts.Foreground = c
	}
	if v := r.FormValue("bg"); v != "" {
		c, err := render.ParseHexColor(v)
		if err != nil {
			return render.Options{}, err
		}
		opts.Background = c
	}
	return opts, nil
}

// logoFromForm reads the optional logo upload. Any problem with the file is a
// warning, never an error: generation proceeds without the overlay.
func (s *Server) logoFromForm(r *http.Request) (*overlay.Logo, string) {
	if r.MultipartForm == nil {
		return nil, ""
	}
	file, _, err := r.FormFile("logo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ""
		}
		return nil, "logo upload ignored: " + err.Error()
	}
	defer file.Close()

	img, err := overlay.Decode(file)
	if err != nil {
		s.Log.Info("logo decode failed, continuing without overlay",
			logger.Component("api"), logger.Error(err))
		return nil, "logo could not be decoded; continuing without it"
	}

	scale := defaultLogoScale
	if v := r.FormValue("logo_scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && f > 0 && f <= 1 {
			scale = f
		}
	}
	round := true
	if v := r.FormValue("logo_round"); v != "" {
		round = formBool(r, "logo_round")
	}
	return &overlay.Logo{Image: img, ScaleFraction: scale, RoundMask: round}, ""
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.FormValue(key)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// formTime accepts datetime-local input values, with or without seconds.
func formTime(r *http.Request, key string) (time.Time, error) {
	v := r.FormValue(key)
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q for %s", v, key)
}
