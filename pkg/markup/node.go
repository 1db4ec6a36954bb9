package markup

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <span>, <ul>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is an output tree node. Containers hold Nodes, renderers produce
// them, and the HTML renderer serializes them.
type Node struct {
	Kind     Kind    // Node type
	Tag      string  // Element tag name (e.g. "span")
	Attrs    Attrs   // Element attributes
	Children []*Node // Child nodes
	Text     string  // For KindText and KindRaw
}

// Attrs holds element attributes.
type Attrs map[string]string

// IsElement reports whether the node is an element with the given tag.
func (n *Node) IsElement(tag string) bool {
	return n != nil && n.Kind == KindElement && n.Tag == tag
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	c := &Node{
		Kind: n.Kind,
		Tag:  n.Tag,
		Text: n.Text,
	}
	if n.Attrs != nil {
		c.Attrs = make(Attrs, len(n.Attrs))
		for k, v := range n.Attrs {
			c.Attrs[k] = v
		}
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// TextContent returns the concatenated text of the node and its
// descendants, ignoring tags. Raw nodes contribute their markup string
// verbatim.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindText, KindRaw:
		return n.Text
	default:
		var out string
		for _, child := range n.Children {
			out += child.TextContent()
		}
		return out
	}
}
