package menu

// Node represents an individual entry in the menu, which is either a branch
// with child nodes or a leaf with a navigable path.
type Node struct {
	// ID is the unique identifier for the node within the scope of its parent.
	ID string `json:"id" yaml:"id"`

	// Label is the display text of the node.
	Label string `json:"label" yaml:"label"`

	// Path is the navigation target. Only leaves carry a path.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Icon is an optional icon name (e.g. "lucide--users").
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`

	// Description is an optional description of the node.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Children are the sub-nodes of this node.
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsBranch reports whether the node has children and can be expanded.
func (n *Node) IsBranch() bool {
	return len(n.Children) > 0
}

// IsLeaf reports whether the node is a navigable leaf.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
