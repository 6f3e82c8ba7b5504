// Package serialize renders a parsed tree back to text, in the two forms
// spec.md §6 calls out: round-trip HTML and the fixture-compatible
// test-format tree dump.
package serialize

import (
	"sort"
	"strings"

	"github.com/corvidlabs/html5/dom"
)

// noEndTag mirrors the void-element set for serialization: these never get
// a closing tag, and their content (always empty) is never emitted.
var noEndTag = map[string]bool{
	"area": true, "base": true, "basefont": true, "bgsound": true, "br": true,
	"col": true, "embed": true, "frame": true, "hr": true, "img": true,
	"input": true, "keygen": true, "link": true, "meta": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

// rawTextParents leaves text children unescaped, matching how the source
// document's literal bytes survive through these elements.
var rawTextParents = map[string]bool{
	"style": true, "script": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true, "noscript": true,
}

// ToHTML serializes n (normally a Document or DocumentFragment) back to an
// HTML string, walking children only: the root node itself is never
// rendered.
func ToHTML(n *dom.Node) string {
	var b strings.Builder
	for _, child := range n.Children() {
		writeNode(&b, child)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *dom.Node) {
	switch n.Kind {
	case dom.ElementKind:
		writeElement(b, n)
	case dom.TextKind:
		if p := n.Parent; p != nil && rawTextParents[p.Name] {
			b.WriteString(n.Data)
		} else {
			b.WriteString(escapeString(n.Data, false))
		}
	case dom.CommentKind:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case dom.DoctypeKind:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.DoctypeName)
		b.WriteString(">")
	}
}

func writeElement(b *strings.Builder, n *dom.Node) {
	if noEndTag[n.Name] && n.Namespace == dom.HTML && n.Attrs.Len() == 0 {
		b.WriteString("<")
		b.WriteString(n.Name)
		b.WriteString(">")
		return
	}

	b.WriteString("<")
	b.WriteString(n.Name)
	names := append([]string(nil), n.Attrs.Names()...)
	sort.Strings(names)
	for _, name := range names {
		v, _ := n.Attrs.Get(name)
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString("=\"")
		b.WriteString(escapeString(v, true))
		b.WriteString("\"")
	}
	b.WriteString(">")

	if noEndTag[n.Name] && n.Namespace == dom.HTML {
		return
	}

	for _, child := range n.Children() {
		writeNode(b, child)
	}

	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteString(">")
}

// escapeString applies the minimal escaping the HTML serialization
// algorithm requires: & and U+00A0 always, plus < and > in text content or
// " inside an attribute value.
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, " ", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}
	return s
}
