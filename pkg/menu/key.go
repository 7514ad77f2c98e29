package menu

import "strings"

// KeySeparator joins node IDs when a Key is rendered as a string.
// Node IDs may not contain it.
const KeySeparator = "."

// Key is the tree path of a node: the IDs from the root down to the node.
// Parent and sibling relationships are derived from the slice itself.
type Key []string

// NewKey returns a key for the given ID chain.
func NewKey(ids ...string) Key {
	return Key(ids)
}

// ParseKey converts the string form of a key back into a Key.
// It is meant for values round-tripped through forms, not for deriving
// relationships between nodes.
func ParseKey(s string) Key {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return Key(strings.Split(s, KeySeparator))
}

// String returns the composite key used in the OpenSet.
func (k Key) String() string {
	return strings.Join(k, KeySeparator)
}

// Depth is the nesting level of the node; top-level nodes have depth 0.
func (k Key) Depth() int {
	return len(k) - 1
}

// ID returns the local ID of the node, or "" for an empty key.
func (k Key) ID() string {
	if len(k) == 0 {
		return ""
	}
	return k[len(k)-1]
}

// Parent returns the key of the parent node. Top-level nodes return an empty key.
func (k Key) Parent() Key {
	if len(k) <= 1 {
		return Key{}
	}
	return k[:len(k)-1:len(k)-1]
}

// Child returns the key of the child with the given ID.
func (k Key) Child(id string) Key {
	c := make(Key, len(k), len(k)+1)
	copy(c, k)
	return append(c, id)
}

// Equal reports whether both keys name the same node.
func (k Key) Equal(o Key) bool {
	if len(k) != len(o) {
		return false
	}
	for i := range k {
		if k[i] != o[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether k lies at or below p in the tree.
func (k Key) HasPrefix(p Key) bool {
	if len(p) > len(k) {
		return false
	}
	for i := range p {
		if k[i] != p[i] {
			return false
		}
	}
	return true
}

// InSiblingBranch reports whether k is a sibling of s, or a descendant of a
// sibling of s. A key is never in its own sibling branch.
func (k Key) InSiblingBranch(s Key) bool {
	if len(s) == 0 || len(k) < len(s) {
		return false
	}
	parent := s.Parent()
	if !k.HasPrefix(parent) {
		return false
	}
	return k[len(parent)] != s.ID()
}
