package render

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-drift/counter/pkg/layout"
)

// HTML renders root as an HTML fragment: flex containers become divs,
// text becomes a div and buttons become button elements.
func HTML(w io.Writer, root layout.RenderObject) error {
	node := htmlNode(Snapshot(root))
	if node == nil {
		return nil
	}
	if err := html.Render(w, node); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func htmlNode(n *Node) *html.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case "text":
		div := element(atom.Div)
		div.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
		return div
	case "button":
		btn := element(atom.Button)
		btn.Attr = append(btn.Attr, html.Attribute{Key: "type", Val: "button"})
		if n.Disabled {
			btn.Attr = append(btn.Attr, html.Attribute{Key: "disabled", Val: ""})
		}
		btn.AppendChild(&html.Node{Type: html.TextNode, Data: n.Label})
		return btn
	default:
		div := element(atom.Div)
		for _, c := range n.Children {
			if child := htmlNode(c); child != nil {
				div.AppendChild(child)
			}
		}
		return div
	}
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
