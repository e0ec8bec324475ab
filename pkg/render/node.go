package render

import (
	"fmt"

	"github.com/go-drift/counter/pkg/layout"
)

// Node is a serializable view of one render object.
type Node struct {
	Type      string  `json:"type"`
	Text      string  `json:"text,omitempty"`
	Label     string  `json:"label,omitempty"`
	Disabled  bool    `json:"disabled,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Spacing   int     `json:"spacing,omitempty"`
	Children  []*Node `json:"children,omitempty"`
}

// Snapshot captures the tree under root. A nil root yields nil.
func Snapshot(root layout.RenderObject) *Node {
	if root == nil {
		return nil
	}
	switch ro := root.(type) {
	case *layout.RenderText:
		return &Node{Type: "text", Text: ro.Text()}
	case *layout.RenderButton:
		return &Node{Type: "button", Label: ro.Label(), Disabled: ro.Disabled()}
	case *layout.RenderFlex:
		node := &Node{Type: "flex", Direction: ro.Direction().String(), Spacing: ro.Spacing()}
		for _, child := range ro.Children() {
			if c := Snapshot(child); c != nil {
				node.Children = append(node.Children, c)
			}
		}
		return node
	default:
		node := &Node{Type: fmt.Sprintf("%T", root)}
		if parent, ok := root.(layout.ChildVisitor); ok {
			parent.VisitChildren(func(child layout.RenderObject) {
				if c := Snapshot(child); c != nil {
					node.Children = append(node.Children, c)
				}
			})
		}
		return node
	}
}

// Texts returns every text and button label under n in depth-first order.
func (n *Node) Texts() []string {
	if n == nil {
		return nil
	}
	var out []string
	switch n.Type {
	case "text":
		out = append(out, n.Text)
	case "button":
		out = append(out, n.Label)
	}
	for _, c := range n.Children {
		out = append(out, c.Texts()...)
	}
	return out
}
