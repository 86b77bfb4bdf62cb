package shell

import (
	"io"
	"time"

	"github.com/agentstation/storefront/pkg/render"
	"github.com/agentstation/storefront/pkg/views"
)

// Option configures a Shell.
type Option func(*Shell)

// WithViews sets the page sizes the views request.
func WithViews(cfg views.Config) Option {
	return func(s *Shell) {
		s.views = cfg
	}
}

// WithRenderer sets the renderer for settled pages.
func WithRenderer(r render.PageRenderer) Option {
	return func(s *Shell) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithOutput sets where settled pages are written.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		if w != nil {
			s.out = w
		}
	}
}

// WithStatus sets where loading indicators are written. A nil writer hides them.
func WithStatus(w io.Writer) Option {
	return func(s *Shell) {
		if w == nil {
			w = io.Discard
		}
		s.statusW = w
	}
}

// WithViewTimeout bounds each view's fetch cycle.
func WithViewTimeout(d time.Duration) Option {
	return func(s *Shell) {
		s.timeout = d
	}
}
