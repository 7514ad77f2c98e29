package session

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mchmarny/hrsite/pkg/menu"
)

// Menu instance names. Each names an independent controller in a session.
const (
	MenuDesktop     = "desktop"
	MenuSidebar     = "sidebar"
	MenuCountryTop  = "country-top"
	MenuCountryMain = "country-main"
)

// Region IDs of the navbar roots that count as inside the menus.
const (
	RegionDesktopNav  = "desktop-nav"
	RegionCountryTop  = "country-top"
	RegionCountryMain = "country-main"
)

// DefaultCountry is the locale selected for new visitors.
const DefaultCountry = "in"

// Session is the menu state of one visitor. Each rendered menu owns its own
// controller; the desktop and country controllers share the navbar regions,
// and every controller shares one router.
//
// Fields must only be accessed inside Do.
type Session struct {
	ID string

	Desktop     *menu.Controller
	Sidebar     *menu.Controller
	CountryTop  *menu.Controller
	CountryMain *menu.Controller

	History *menu.History
	Regions *menu.Regions

	Country        string
	PromoDismissed bool

	mu       sync.Mutex
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newSession(id string, trees Trees, obs menu.Observer, limiter *rate.Limiter, now time.Time) *Session {
	h := &menu.History{}
	regions := menu.NewRegions(RegionDesktopNav, RegionCountryTop, RegionCountryMain)

	common := func(name string) []menu.Option {
		opts := []menu.Option{menu.WithName(name), menu.WithRouter(h), menu.WithRegions(regions)}
		if obs != nil {
			opts = append(opts, menu.WithObserver(obs))
		}
		return opts
	}

	return &Session{
		ID:          id,
		Desktop:     menu.NewController(trees.Nav, common(MenuDesktop)...),
		Sidebar:     menu.NewController(trees.Nav, append(common(MenuSidebar), menu.WithSidebar())...),
		CountryTop:  menu.NewController(trees.Countries, common(MenuCountryTop)...),
		CountryMain: menu.NewController(trees.Countries, common(MenuCountryMain)...),
		History:     h,
		Regions:     regions,
		Country:     DefaultCountry,
		limiter:     limiter,
		lastSeen:    now,
	}
}

// Do runs fn with the session locked, making fn one synchronous turn of
// the menu state machines.
func (s *Session) Do(fn func(s *Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// Controller returns the controller for a menu instance name.
func (s *Session) Controller(name string) (*menu.Controller, bool) {
	switch name {
	case MenuDesktop:
		return s.Desktop, true
	case MenuSidebar:
		return s.Sidebar, true
	case MenuCountryTop:
		return s.CountryTop, true
	case MenuCountryMain:
		return s.CountryMain, true
	default:
		return nil, false
	}
}

// Navbar returns the controllers whose menus live in the navbar and close
// on outside interaction.
func (s *Session) Navbar() []*menu.Controller {
	return []*menu.Controller{s.Desktop, s.CountryTop, s.CountryMain}
}

// Visit reports a page view: the router learns the active path and the
// sidebar observes the route change.
func (s *Session) Visit(path string) {
	s.History.Visit(path)
	s.Sidebar.OnRouteChange(path)
}

// AllowForm reports whether the visitor may submit another form now.
func (s *Session) AllowForm() bool {
	if s.limiter == nil {
		return true
	}
	return s.limiter.Allow()
}

// State is a JSON view of every OpenSet in the session.
type State struct {
	Menus   map[string]map[string]bool `json:"menus"`
	Overlay bool                       `json:"sidebar_overlay"`
	Country string                     `json:"country"`
	Path    string                     `json:"path"`
}

// State snapshots the session.
func (s *Session) State() State {
	return State{
		Menus: map[string]map[string]bool{
			MenuDesktop:     s.Desktop.Snapshot(),
			MenuSidebar:     s.Sidebar.Snapshot(),
			MenuCountryTop:  s.CountryTop.Snapshot(),
			MenuCountryMain: s.CountryMain.Snapshot(),
		},
		Overlay: s.Sidebar.OverlayOpen(),
		Country: s.Country,
		Path:    s.History.Current(),
	}
}
