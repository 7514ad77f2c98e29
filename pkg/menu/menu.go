package menu

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTree is returned (wrapped) when a menu tree violates its invariants.
var ErrInvalidTree = errors.New("invalid menu tree")

// Menu represents the root of a static navigation tree.
// A Menu is immutable once built by New, Parse or LoadFile.
type Menu struct {
	// Title is the menu
	Title string `json:"title" yaml:"title"`

	// Description of the menu
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Items is the list of top-level nodes
	Items []Node `json:"items,omitempty" yaml:"items,omitempty"`

	index map[string]Entry
}

// Entry is an indexed node together with its position in the tree.
type Entry struct {
	Key  Key
	Node *Node
}

// Problem describes one invariant violation found by Validate.
type Problem struct {
	Key    string
	Reason string
}

// ValidationError lists every problem found in a tree.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		if p.Key == "" {
			parts = append(parts, p.Reason)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", p.Key, p.Reason))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidTree, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidTree
}

// New validates the items and returns an indexed menu.
func New(title string, items ...Node) (*Menu, error) {
	m := &Menu{Title: title, Items: items}
	if err := m.build(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustNew is like New but panics on an invalid tree.
// It is intended for hardcoded trees.
func MustNew(title string, items ...Node) *Menu {
	m, err := New(title, items...)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse decodes a YAML menu document.
func Parse(data []byte) (*Menu, error) {
	m := &Menu{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}
	if err := m.build(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads and parses a YAML menu file.
func LoadFile(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("menu file %s: %w", path, err)
	}
	return m, nil
}

func (m *Menu) build() error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.index = make(map[string]Entry)
	m.Walk(func(k Key, n *Node) bool {
		m.index[k.String()] = Entry{Key: k, Node: n}
		return true
	})
	return nil
}

// Validate checks the tree invariants: every node has an ID and a label,
// IDs are unique among siblings and free of the key separator, and each
// node is either a branch or a leaf with a path, never neither nor both.
func (m *Menu) Validate() error {
	var problems []Problem
	if len(m.Items) == 0 {
		problems = append(problems, Problem{Reason: "menu has no items"})
	}
	validateLevel(Key{}, m.Items, &problems)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validateLevel(parent Key, nodes []Node, problems *[]Problem) {
	seen := make(map[string]bool, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		k := parent.Child(n.ID)
		name := k.String()

		switch {
		case n.ID == "":
			*problems = append(*problems, Problem{Key: parent.Child(fmt.Sprintf("#%d", i)).String(), Reason: "missing id"})
		case strings.Contains(n.ID, KeySeparator):
			*problems = append(*problems, Problem{Key: name, Reason: fmt.Sprintf("id may not contain %q", KeySeparator)})
		case seen[n.ID]:
			*problems = append(*problems, Problem{Key: name, Reason: "duplicate id among siblings"})
		}
		seen[n.ID] = true

		if strings.TrimSpace(n.Label) == "" {
			*problems = append(*problems, Problem{Key: name, Reason: "missing label"})
		}

		switch {
		case n.IsBranch() && n.Path != "":
			*problems = append(*problems, Problem{Key: name, Reason: "branch may not have a path"})
		case n.IsLeaf() && n.Path == "":
			*problems = append(*problems, Problem{Key: name, Reason: "leaf must have a path"})
		case n.IsLeaf() && !validPath(n.Path):
			*problems = append(*problems, Problem{Key: name, Reason: fmt.Sprintf("invalid path %q", n.Path)})
		}

		validateLevel(k, n.Children, problems)
	}
}

func validPath(p string) bool {
	return strings.HasPrefix(p, "/") ||
		strings.HasPrefix(p, "#") ||
		strings.HasPrefix(p, "https://") ||
		strings.HasPrefix(p, "http://")
}

// Walk visits every node depth first in menu order.
// Returning false from fn skips the node's children.
func (m *Menu) Walk(fn func(k Key, n *Node) bool) {
	for i := range m.Items {
		walkNode(Key{}, &m.Items[i], fn)
	}
}

func walkNode(parent Key, n *Node, fn func(k Key, n *Node) bool) {
	k := parent.Child(n.ID)
	if !fn(k, n) {
		return
	}
	for i := range n.Children {
		walkNode(k, &n.Children[i], fn)
	}
}

// Lookup returns the indexed entry for key.
func (m *Menu) Lookup(k Key) (Entry, bool) {
	e, ok := m.index[k.String()]
	return e, ok
}

// Len returns the number of nodes in the tree.
func (m *Menu) Len() int {
	return len(m.index)
}

// Leaves returns the keys of all leaves in menu order.
func (m *Menu) Leaves() []Key {
	var keys []Key
	m.Walk(func(k Key, n *Node) bool {
		if n.IsLeaf() {
			keys = append(keys, k)
		}
		return true
	})
	return keys
}

// FindPath returns the key of the first leaf whose path equals p.
func (m *Menu) FindPath(p string) (Key, bool) {
	for _, k := range m.Leaves() {
		if e, _ := m.Lookup(k); e.Node.Path == p {
			return k, true
		}
	}
	return nil, false
}

// ToJSON returns a JSON-serializable representation of the menu.
func (m *Menu) ToJSON() interface{} {
	return m
}

// Handler returns an HTTP handler that responds with the menu structure as JSON.
func (m *Menu) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("handling menu request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		data, err := json.Marshal(m.ToJSON())
		if err != nil {
			slog.Error("failed to encode menu", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			slog.Error("failed to write menu response", "error", err)
		}
	})
}
