// Package site serves the marketing pages and the menu actions that drive
// each visitor's navigation state.
package site

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/hrsite/pkg/logger"
	"github.com/mchmarny/hrsite/pkg/metric"
	"github.com/mchmarny/hrsite/pkg/session"
)

//go:embed static
var staticFS embed.FS

// Site renders pages for the sessions of one store.
type Site struct {
	trees  session.Trees
	store  *session.Store
	static fs.FS
	promo  bool

	views       metric.IncrementalCounter
	submissions metric.IncrementalCounter
}

// Option configures a Site.
type Option func(*Site)

// WithPromo enables the promo modal on the landing page.
func WithPromo(enabled bool) Option {
	return func(s *Site) { s.promo = enabled }
}

// New creates a site over the store's sessions and registers its counters with reg.
func New(store *session.Store, trees session.Trees, reg prometheus.Registerer, opts ...Option) (*Site, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if trees.Nav == nil || trees.Countries == nil {
		return nil, errors.New("navigation and country menus are required")
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to access static files: %w", err)
	}

	s := &Site{
		trees:       trees,
		store:       store,
		static:      static,
		views:       metric.NewCounterWithRegistry(reg, "page_views_total", "Rendered pages by route.", "page"),
		submissions: metric.NewCounterWithRegistry(reg, "form_submissions_total", "Form posts by form and result.", "form", "result"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Routes returns the site router.
func (s *Site) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logger.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.static))))
	r.Method(http.MethodGet, "/api/menu", s.trees.Nav.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.store.Middleware)

		r.Get("/", s.landing)
		r.Get("/services", s.services)
		r.Get("/services/{slug}", s.service)
		for _, name := range []string{"about", "pricing", "careers", "contact"} {
			r.Get("/"+name, s.contentPage(name))
		}
		r.Get("/country/{code}", s.selectCountry)
		r.Get("/api/menu/state", s.menuState)

		r.Post("/menu/dismiss", s.dismiss)
		r.Post("/menu/sidebar/overlay", s.overlay)
		r.Post("/menu/{menu}/toggle", s.toggle)
		r.Post("/menu/{menu}/navigate", s.navigate)

		r.Post("/demo", s.demo)
		r.Post("/newsletter", s.newsletter)
		r.Post("/promo/dismiss", s.dismissPromo)

		r.NotFound(s.notFound)
	})

	return r
}

// Ready reports whether the site can serve pages.
func (s *Site) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.trees.Nav.Len() == 0 {
		return errors.New("navigation menu is empty")
	}
	return nil
}
