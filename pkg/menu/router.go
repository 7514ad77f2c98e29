package menu

// Router receives navigation requests from a controller.
// Push is fire-and-forget: the controller does not wait for the route change.
type Router interface {
	Push(path string)
}

// RouterFunc adapts a function to the Router interface.
type RouterFunc func(path string)

// Push calls f(path).
func (f RouterFunc) Push(path string) {
	f(path)
}

// History is an in-memory Router. It records the most recent push until it
// is taken, and tracks the active path reported by the view layer.
type History struct {
	current string
	pending string
	pushes  int
}

// Push records path as the pending navigation.
func (h *History) Push(path string) {
	h.pending = path
	h.pushes++
}

// Pending returns the path of the last push that has not been taken yet.
func (h *History) Pending() string {
	return h.pending
}

// Take returns and clears the pending path.
func (h *History) Take() string {
	p := h.pending
	h.pending = ""
	return p
}

// Visit records path as the active route.
func (h *History) Visit(path string) {
	h.current = path
}

// Current returns the active route.
func (h *History) Current() string {
	return h.current
}

// Pushes returns how many navigations were requested.
func (h *History) Pushes() int {
	return h.pushes
}
