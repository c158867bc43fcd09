// SPDX-License-Identifier: MIT
// Package: latex3d/render
//
// fragment.go — the rendered unit: an HTML node tree plus its size.

package render

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/katalvlaran/latex3d/geom"
)

// Fragment is one rendered container. Width and Height are expressed in
// Unit. Node is owned by the fragment; treat it as read-only.
type Fragment struct {
	Node   *html.Node
	Width  float64
	Height float64
	Unit   string
}

// HTML returns the serialized fragment.
func (f Fragment) HTML() string {
	var b strings.Builder
	// strings.Builder never fails
	_ = f.WriteHTML(&b)
	return b.String()
}

// String implements fmt.Stringer.
func (f Fragment) String() string { return f.HTML() }

// WriteHTML serializes the fragment to w.
func (f Fragment) WriteHTML(w io.Writer) error {
	if f.Node == nil {
		return nil
	}
	return html.Render(w, f.Node)
}

// WithStyle returns a copy of f whose container style ends with css.
// f itself is left untouched.
func (f Fragment) WithStyle(css string) Fragment {
	out := f
	out.Node = cloneTree(f.Node)
	if out.Node != nil && css != "" {
		setAttr(out.Node, "style", joinStyle(attr(out.Node, "style"), css))
	}
	return out
}

// length formats v with the fragment unit ("133.923px").
func length(v float64, unit string) string {
	return geom.Format(v) + unit
}

// joinStyle concatenates CSS declaration lists, terminating each with ';'.
func joinStyle(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(p)
		if !strings.HasSuffix(p, ";") {
			b.WriteByte(';')
		}
	}
	return b.String()
}

// div returns a detached <div> element with the given attributes; empty
// values are omitted.
func div(class, style string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: atom.Div.String()}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	if style != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: style})
	}
	return n
}

// text returns a detached text node.
func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// attr returns the value of key on n, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// setAttr sets key on n, appending the attribute when absent.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// cloneTree deep-copies n and its descendants into a detached tree.
func cloneTree(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(cloneTree(ch))
	}
	return c
}
