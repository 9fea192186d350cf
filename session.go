package qrlab

import (
	"sync"

	"github.com/qrlab/qrlab/pkg/overlay"
	"github.com/qrlab/qrlab/pkg/payload"
	"github.com/qrlab/qrlab/pkg/render"
)

// Session remembers the last successful generation so its exports can be
// re-downloaded without re-formatting. Last-write-wins; the mutex only guards
// the pointer swap so the HTTP surface can call it from concurrent handlers.
type Session struct {
	mu   sync.RWMutex
	last *Result
}

func NewSession() *Session {
	return &Session{}
}

// Generate runs a generation and, on success, stores the result as the
// session's latest. Failed generations leave the previous result in place.
func (s *Session) Generate(content payload.Content, opts render.Options, logo *overlay.Logo) (*Result, error) {
	res, err := Generate(content, opts, logo)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.last = res
	s.mu.Unlock()
	return res, nil
}

// Last returns the most recent successful result, if any.
func (s *Session) Last() (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.last != nil
}
