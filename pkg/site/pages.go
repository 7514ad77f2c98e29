package site

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/mchmarny/hrsite/pkg/session"
	"github.com/mchmarny/hrsite/pkg/site/components"
	"github.com/mchmarny/hrsite/pkg/site/content"
	"github.com/mchmarny/hrsite/pkg/site/forms"
)

// page renders body inside the layout with the visitor's menu state.
// GET requests report their path as a route change before rendering, so
// the sidebar overlay closes on navigation.
func (s *Site) page(w http.ResponseWriter, r *http.Request, status int, cfg components.PageConfig, body ...g.Node) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		slog.Error("page rendered without session", "url", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	var err error
	sess.Do(func(ss *session.Session) {
		path := ss.History.Current()
		if r.Method == http.MethodGet {
			path = r.URL.Path
			ss.Visit(path)
		}
		if path == "" {
			path = "/"
		}

		chrome := components.Chrome{
			Path:        path,
			Desktop:     ss.Desktop,
			Sidebar:     ss.Sidebar,
			CountryTop:  ss.CountryTop,
			CountryMain: ss.CountryMain,
			Country:     content.CountryName(s.trees.Countries, ss.Country),
			ShowPromo:   s.promo && !ss.PromoDismissed && path == "/",
		}
		err = components.Layout(cfg, chrome, body...).Render(&buf)
	})
	if err != nil {
		slog.Error("failed to render page", "url", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.views.Increment(routeLabel(r))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write page", "url", r.URL.Path, "error", err)
	}
}

func routeLabel(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "not_found"
}

func (s *Site) landing(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, components.PageConfig{},
		components.Hero(content.LandingHero),
		components.StatsBar(),
		components.Features(content.Highlights),
		components.WhyChooseUs(content.Reasons),
		components.DemoForm(forms.Demo{}, nil),
		components.NewsletterSignup(forms.Signup{}, nil),
	)
}

func (s *Site) services(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, components.PageConfig{Title: "Services - " + content.Company},
		components.Hero(content.ServicesHero),
		components.ServiceGrid(content.Services),
	)
}

func (s *Site) service(w http.ResponseWriter, r *http.Request) {
	svc, ok := content.ServiceBySlug(chi.URLParam(r, "slug"))
	if !ok {
		s.notFound(w, r)
		return
	}
	s.page(w, r, http.StatusOK, components.PageConfig{Title: svc.Title + " - " + content.Company, Description: svc.Summary},
		components.ServiceDetail(svc),
		components.DemoForm(forms.Demo{}, nil),
	)
}

func (s *Site) contentPage(name string) http.HandlerFunc {
	p := content.Pages[name]
	return func(w http.ResponseWriter, r *http.Request) {
		s.page(w, r, http.StatusOK, components.PageConfig{Title: p.Title + " - " + content.Company, Description: p.Lead},
			components.ContentPage(p),
		)
	}
}

func (s *Site) notFound(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusNotFound, components.PageConfig{Title: "Page not found - " + content.Company},
		components.Message("Page not found", "The page you are looking for has moved or never existed."),
	)
}
