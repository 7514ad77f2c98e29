package menu

import "log/slog"

// Observer is notified after each state transition of a controller.
type Observer interface {
	OnToggle(menu string, k Key, expanded bool)
	OnNavigate(menu string, path string)
	OnDismiss(menu string)
}

// Controller tracks which branches of one rendered menu are expanded.
//
// At most one branch per sibling group is open at a time. A Controller is
// owned by a single menu instance and is not safe for concurrent use;
// callers serialize access (see session.Session.Do).
type Controller struct {
	name     string
	tree     *Menu
	open     map[string]Key
	router   Router
	regions  *Regions
	observer Observer

	sidebar bool
	overlay bool
	route   string
	routed  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRouter sets the collaborator that receives navigation requests.
func WithRouter(r Router) Option {
	return func(c *Controller) { c.router = r }
}

// WithRegions sets the registry used by DismissIfOutside.
func WithRegions(r *Regions) Option {
	return func(c *Controller) { c.regions = r }
}

// WithObserver sets a hook notified of toggles, navigations and dismissals.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithName names the controller in logs and observer callbacks.
func WithName(name string) Option {
	return func(c *Controller) { c.name = name }
}

// WithSidebar makes the controller back a sidebar: it owns an overlay that
// navigation and route changes close.
func WithSidebar() Option {
	return func(c *Controller) { c.sidebar = true }
}

// NewController mounts a controller over tree with an empty OpenSet.
func NewController(tree *Menu, opts ...Option) *Controller {
	c := &Controller{
		name: "menu",
		tree: tree,
		open: make(map[string]Key),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the controller name.
func (c *Controller) Name() string {
	return c.name
}

// Tree returns the menu the controller was mounted with.
func (c *Controller) Tree() *Menu {
	return c.tree
}

// IsSidebar reports whether the controller owns an overlay.
func (c *Controller) IsSidebar() bool {
	return c.sidebar
}

// Toggle flips the node at k between collapsed and expanded.
// Expanding a node collapses its siblings and everything below them.
// Leaves are ignored; unknown keys are expanded as if they were branches.
// It returns whether k is expanded afterwards.
func (c *Controller) Toggle(k Key) bool {
	if len(k) == 0 {
		return false
	}
	if c.tree != nil {
		if e, ok := c.tree.Lookup(k); ok && e.Node.IsLeaf() {
			return false
		}
	}

	self := k.String()
	if _, ok := c.open[self]; ok {
		delete(c.open, self)
		c.notifyToggle(k, false)
		return false
	}

	for id, other := range c.open {
		if other.InSiblingBranch(k) {
			delete(c.open, id)
		}
	}
	c.open[self] = append(Key(nil), k...)
	c.notifyToggle(k, true)
	return true
}

// Navigate asks the router to go to path and then collapses every branch.
// A sidebar also closes its overlay. Empty paths are ignored.
func (c *Controller) Navigate(path string) {
	if path == "" {
		slog.Debug("ignoring navigation without path", "menu", c.name)
		return
	}
	if c.router != nil {
		c.router.Push(path)
	}
	c.CloseAll()
	if c.sidebar {
		c.overlay = false
	}
	if c.observer != nil {
		c.observer.OnNavigate(c.name, path)
	}
}

// DismissIfOutside collapses every branch unless the interaction target,
// given as its ancestor chain, lies within a registered menu root.
// It reports whether the target was outside. Observers are only notified
// when something was expanded.
func (c *Controller) DismissIfOutside(chain ...string) bool {
	if c.regions.Contains(chain...) {
		return false
	}
	had := len(c.open) > 0
	c.CloseAll()
	if had && c.observer != nil {
		c.observer.OnDismiss(c.name)
	}
	return true
}

// OnRouteChange observes the active route. When it differs from the
// previously observed route the sidebar overlay is closed.
func (c *Controller) OnRouteChange(path string) {
	changed := c.routed && path != c.route
	c.route = path
	c.routed = true
	if changed && c.overlay {
		slog.Debug("route changed, closing overlay", "menu", c.name, "path", path)
		c.overlay = false
	}
}

// CloseAll collapses every branch.
func (c *Controller) CloseAll() {
	clear(c.open)
}

// Expanded reports whether the node at k is expanded.
func (c *Controller) Expanded(k Key) bool {
	_, ok := c.open[k.String()]
	return ok
}

// AnyExpanded reports whether a top-level branch is expanded, that is
// whether anything beyond the root level is currently drawn. Entries kept
// under a collapsed ancestor do not count.
func (c *Controller) AnyExpanded() bool {
	if c.tree == nil {
		return false
	}
	for _, n := range c.tree.Items {
		if n.IsBranch() && c.Expanded(NewKey(n.ID)) {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the OpenSet.
func (c *Controller) Snapshot() map[string]bool {
	s := make(map[string]bool, len(c.open))
	for k := range c.open {
		s[k] = true
	}
	return s
}

// Len returns the number of expanded entries.
func (c *Controller) Len() int {
	return len(c.open)
}

// OverlayOpen reports whether the sidebar overlay is shown.
func (c *Controller) OverlayOpen() bool {
	return c.overlay
}

// OpenOverlay shows the sidebar overlay. It is a no-op for non-sidebar menus.
func (c *Controller) OpenOverlay() {
	if c.sidebar {
		c.overlay = true
	}
}

// CloseOverlay hides the sidebar overlay and collapses its branches.
func (c *Controller) CloseOverlay() {
	c.overlay = false
	c.CloseAll()
}

// ToggleOverlay flips the sidebar overlay and returns the new state.
func (c *Controller) ToggleOverlay() bool {
	if c.overlay {
		c.CloseOverlay()
	} else {
		c.OpenOverlay()
	}
	return c.overlay
}

// VisibleNode is a node the view layer should currently draw.
type VisibleNode struct {
	Key      Key
	Node     *Node
	Depth    int
	Expanded bool
}

// Visible flattens the tree to the nodes whose ancestors are all expanded.
func (c *Controller) Visible() []VisibleNode {
	var out []VisibleNode
	if c.tree == nil {
		return out
	}
	c.tree.Walk(func(k Key, n *Node) bool {
		exp := n.IsBranch() && c.Expanded(k)
		out = append(out, VisibleNode{Key: k, Node: n, Depth: k.Depth(), Expanded: exp})
		return exp
	})
	return out
}

func (c *Controller) notifyToggle(k Key, expanded bool) {
	if c.observer != nil {
		c.observer.OnToggle(c.name, k, expanded)
	}
}
