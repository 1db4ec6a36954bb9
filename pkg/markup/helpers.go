package markup

import "fmt"

// Text creates a text node.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: html,
	}
}

// El creates an element node. Children may be *Node, []*Node, or string
// (converted to a text node); nils are skipped.
func El(tag string, children ...any) *Node {
	node := &Node{
		Kind: KindElement,
		Tag:  tag,
	}
	appendChildren(node, children)
	return node
}

// ElAttr creates an element node with attributes.
func ElAttr(tag string, attrs Attrs, children ...any) *Node {
	node := El(tag, children...)
	node.Attrs = attrs
	return node
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Node {
	node := &Node{
		Kind:     KindFragment,
		Children: make([]*Node, 0),
	}
	appendChildren(node, children)
	return node
}

func appendChildren(node *Node, children []any) {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		default:
			node.Children = append(node.Children, Textf("%v", v))
		}
	}
}
