package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/qrlab/qrlab"
)

func (s *Server) handleDownloadPNG(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, func(res *qrlab.Result) (qrlab.Export, error) { return res.PNG() })
}

func (s *Server) handleDownloadSVG(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, func(res *qrlab.Result) (qrlab.Export, error) { return res.SVG() })
}

func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, func(res *qrlab.Result) (qrlab.Export, error) { return res.PDF() })
}

// serveExport re-exports the session's last result. Download filenames are
// fixed per format.
func (s *Server) serveExport(w http.ResponseWriter, export func(*qrlab.Result) (qrlab.Export, error)) {
	res, ok := s.Session.Last()
	if !ok {
		writeError(w, http.StatusNotFound, "nothing generated yet")
		return
	}

	e, err := export(res)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if e.Warning != "" {
		w.Header().Set("X-Generation-Warning", e.Warning)
	}
	w.Header().Set("Content-Type", e.MIME)
	w.Header().Set("Content-Length", strconv.Itoa(len(e.Data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", e.Filename))
	_, _ = w.Write(e.Data)
}
