package site

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/mchmarny/hrsite/pkg/menu"
	"github.com/mchmarny/hrsite/pkg/session"
	"github.com/mchmarny/hrsite/pkg/site/content"
)

// safeReturn accepts only same-origin absolute paths and falls back to "/".
func safeReturn(p string) string {
	if !sameOrigin(p) {
		return "/"
	}
	return p
}

func sameOrigin(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}
	u, err := url.Parse(p)
	return err == nil && u.Scheme == "" && u.Host == ""
}

// withFragment resolves a fragment-only menu path against the return page.
func withFragment(ret, frag string) string {
	if i := strings.IndexByte(ret, '#'); i >= 0 {
		ret = ret[:i]
	}
	return ret + frag
}

func (s *Site) toggle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "menu")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	k := menu.ParseKey(r.PostFormValue("key"))
	ret := safeReturn(r.PostFormValue("return"))

	found, known := false, false
	session.FromContext(r.Context()).Do(func(ss *session.Session) {
		ctrl, ok := ss.Controller(name)
		if !ok {
			return
		}
		found = true

		// Keys outside the tree would never be closed by a sibling.
		if _, known = ctrl.Tree().Lookup(k); !known {
			return
		}
		ctrl.Toggle(k)
	})
	switch {
	case !found:
		s.notFound(w, r)
		return
	case !known:
		http.Error(w, "unknown menu key", http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (s *Site) navigate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "menu")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	target := r.PostFormValue("path")
	ret := safeReturn(r.PostFormValue("return"))

	found, allowed := false, false
	var dest string
	session.FromContext(r.Context()).Do(func(ss *session.Session) {
		ctrl, ok := ss.Controller(name)
		if !ok {
			return
		}
		found = true

		// Only paths the tree links to may leave the site.
		if _, inTree := ctrl.Tree().FindPath(target); !inTree && !sameOrigin(target) {
			return
		}
		allowed = true
		ctrl.Navigate(target)
		dest = ss.History.Take()
	})

	switch {
	case !found:
		s.notFound(w, r)
		return
	case !allowed:
		http.Error(w, "unknown navigation target", http.StatusBadRequest)
		return
	case dest == "":
		dest = ret
	case strings.HasPrefix(dest, "#"):
		dest = withFragment(ret, dest)
	case strings.HasPrefix(dest, content.CountryPrefix):
		dest += "?return=" + url.QueryEscape(ret)
	}

	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// selectCountry stores the chosen locale and returns to the page it was picked on.
func (s *Site) selectCountry(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if _, ok := s.trees.Countries.FindPath(content.CountryPath(code)); !ok {
		s.notFound(w, r)
		return
	}

	session.FromContext(r.Context()).Do(func(ss *session.Session) {
		ss.Country = code
	})
	slog.Debug("country selected", "country", code)

	http.Redirect(w, r, safeReturn(r.URL.Query().Get("return")), http.StatusSeeOther)
}

// dismiss treats the posted ancestor chain as one pointer interaction and
// closes every navbar menu it landed outside of.
func (s *Site) dismiss(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	chain := r.PostForm["target"]
	ret := safeReturn(r.PostFormValue("return"))

	session.FromContext(r.Context()).Do(func(ss *session.Session) {
		for _, ctrl := range ss.Navbar() {
			ctrl.DismissIfOutside(chain...)
		}
	})

	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (s *Site) overlay(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	open := r.PostFormValue("open")
	ret := safeReturn(r.PostFormValue("return"))

	session.FromContext(r.Context()).Do(func(ss *session.Session) {
		switch open {
		case "true":
			ss.Sidebar.OpenOverlay()
		case "false":
			ss.Sidebar.CloseOverlay()
		default:
			ss.Sidebar.ToggleOverlay()
		}
	})

	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (s *Site) menuState(w http.ResponseWriter, r *http.Request) {
	var state session.State
	session.FromContext(r.Context()).Do(func(ss *session.Session) {
		state = ss.State()
	})

	data, err := json.Marshal(state)
	if err != nil {
		slog.Error("failed to marshal menu state", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(data); err != nil {
		slog.Debug("failed to write menu state", "error", err)
	}
}

func (s *Site) dismissPromo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	session.FromContext(r.Context()).Do(func(ss *session.Session) {
		ss.PromoDismissed = true
	})
	http.Redirect(w, r, safeReturn(r.PostFormValue("return")), http.StatusSeeOther)
}
