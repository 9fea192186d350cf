package api_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrlab/qrlab"
	"github.com/qrlab/qrlab/api"
	"github.com/qrlab/qrlab/pkg/render"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(&api.Server{
		Session: qrlab.NewSession(),
		Presets: map[string]render.Options{
			"tiny": {Level: render.LevelM, ModuleScale: 2, QuietZone: 0},
		},
		Version: "test",
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postForm(t *testing.T, srv *httptest.Server, form url.Values) (*http.Response, map[string]string) {
	t.Helper()
	resp, err := http.PostForm(srv.URL+"/api/generate", form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestGenerateText(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, body := postForm(t, srv, url.Values{"type": {"text"}, "text": {"https://example.com"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "https://example.com", body["payload"])
	assert.NotEmpty(t, body["id"])
	assert.Empty(t, body["warning"])

	raw, err := base64.StdEncoding.DecodeString(body["preview_png"])
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	require.NoError(t, err, "preview must be a valid PNG")
}

func TestGenerateWiFi(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, body := postForm(t, srv, url.Values{
		"type": {"wifi"}, "ssid": {"Home"}, "password": {"pw123"}, "auth": {"nopass"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "WIFI:T:nopass;S:Home;P:pw123;H:false;;", body["payload"])
}

func TestGenerateRejectsBlankPayload(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, body := postForm(t, srv, url.Values{"type": {"text"}, "text": {"   "}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "enter content")
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	t.Run("unknown content type", func(t *testing.T) {
		t.Parallel()
		resp, body := postForm(t, srv, url.Values{"type": {"hologram"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["error"], "unknown content type")
	})

	t.Run("bad coordinates", func(t *testing.T) {
		t.Parallel()
		resp, body := postForm(t, srv, url.Values{"type": {"geo"}, "lat": {"north"}, "lon": {"1"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["error"], "latitude")
	})

	t.Run("bad style value", func(t *testing.T) {
		t.Parallel()
		resp, _ := postForm(t, srv, url.Values{"type": {"text"}, "text": {"x"}, "level": {"Z"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()
		resp, body := postForm(t, srv, url.Values{"type": {"text"}, "text": {"x"}, "preset": {"nope"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["error"], "unknown preset")
	})
}

func TestGeneratePresetApplied(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, body := postForm(t, srv, url.Values{"type": {"text"}, "text": {"preset me"}, "preset": {"tiny"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	m, err := render.Matrix("preset me", render.LevelM)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(body["preview_png"])
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, len(m)*2, img.Bounds().Dx(), "tiny preset: 2px modules, no quiet zone")
}

func multipartBody(t *testing.T, fields map[string]string, logoName string, logoData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if logoName != "" {
		fw, err := mw.CreateFormFile("logo", logoName)
		require.NoError(t, err)
		_, err = fw.Write(logoData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestGenerateWithLogo(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	t.Run("valid logo is composited without warning", func(t *testing.T) {
		t.Parallel()
		var logoBuf bytes.Buffer
		require.NoError(t, png.Encode(&logoBuf, imaging.New(24, 24, color.NRGBA{R: 0xFF, A: 0xFF})))

		body, contentType := multipartBody(t, map[string]string{
			"type": "text", "text": "https://example.com", "logo_scale": "0.2",
		}, "logo.png", logoBuf.Bytes())

		resp, err := http.Post(srv.URL+"/api/generate", contentType, body)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Empty(t, out["warning"])
	})

	t.Run("corrupt logo degrades with a warning", func(t *testing.T) {
		t.Parallel()
		body, contentType := multipartBody(t, map[string]string{
			"type": "text", "text": "https://example.com",
		}, "logo.png", []byte("definitely not an image"))

		resp, err := http.Post(srv.URL+"/api/generate", contentType, body)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, "a broken logo must not fail generation")

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Contains(t, out["warning"], "logo")
		assert.NotEmpty(t, out["preview_png"], "the un-logoed QR code is still returned")
	})
}

func TestDownloads(t *testing.T) {
	t.Parallel()

	t.Run("404 before anything is generated", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t)
		for _, path := range []string{"/api/qr.png", "/api/qr.svg", "/api/qr.pdf"} {
			resp, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		}
	})

	t.Run("serves the last result with fixed filenames", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t)
		resp, _ := postForm(t, srv, url.Values{"type": {"text"}, "text": {"download me"}})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cases := []struct {
			path, mime, filename, prefix string
		}{
			{"/api/qr.png", "image/png", "qr.png", "\x89PNG"},
			{"/api/qr.svg", "image/svg+xml", "qr.svg", "<?xml"},
			{"/api/qr.pdf", "application/pdf", "qr.pdf", "%PDF-"},
		}
		for _, tc := range cases {
			res, err := http.Get(srv.URL + tc.path)
			require.NoError(t, err, tc.path)

			assert.Equal(t, tc.mime, res.Header.Get("Content-Type"), tc.path)
			assert.Contains(t, res.Header.Get("Content-Disposition"), tc.filename, tc.path)

			var data bytes.Buffer
			_, err = data.ReadFrom(res.Body)
			res.Body.Close()
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(data.String(), tc.prefix), "%s should start with %q", tc.path, tc.prefix)
		}
	})
}

func TestStatus(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	get := func() map[string]any {
		resp, err := http.Get(srv.URL + "/api/status")
		require.NoError(t, err)
		defer resp.Body.Close()
		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	out := get()
	assert.Equal(t, "test", out["version"])
	assert.Equal(t, false, out["has_result"])

	resp, _ := postForm(t, srv, url.Values{"type": {"text"}, "text": {"hi"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, true, get()["has_result"])
}

func TestPage(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "QR Lab")
}
