package serialize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/corvidlabs/html5/dom"
)

// svgCamelCase holds the handful of SVG element names whose camel-case
// spelling must resurface in the fixture test format even though the node
// model itself always stores lower-case names (see the tree builder's
// openForeignElement).
var svgCamelCase = map[string]string{
	"foreignobject": "foreignObject",
}

// foreignAttrPrefix reports the flattened xml:*/xlink:* spelling a foreign
// attribute name should render as, when the tag it's found on lives outside
// the HTML namespace.
func foreignAttrPrefix(name string) (prefix, rest string, ok bool) {
	switch {
	case strings.HasPrefix(name, "xlink:"):
		return "xlink", name[len("xlink:"):], true
	case strings.HasPrefix(name, "xml:"):
		return "xml", name[len("xml:"):], true
	}
	return "", "", false
}

// ToTestFormat renders n as the fixture tree dump spec.md §6 describes: a
// preorder walk, one line per node, indented two spaces per depth, with
// attribute lines sorted by key beneath their element.
func ToTestFormat(n *dom.Node) string {
	var b strings.Builder
	for _, child := range n.Children() {
		writeTestNode(&b, child, 0)
	}
	return strings.TrimRight(b.String(), "\n")
}

func indent(b *strings.Builder, depth int) {
	b.WriteString("| ")
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func writeTestNode(b *strings.Builder, n *dom.Node, depth int) {
	switch n.Kind {
	case dom.ElementKind:
		indent(b, depth)
		b.WriteString("<")
		switch n.Namespace {
		case dom.SVG:
			b.WriteString("svg ")
		case dom.MathML:
			b.WriteString("math ")
		}
		name := n.Name
		if n.Namespace == dom.SVG {
			if camel, ok := svgCamelCase[name]; ok {
				name = camel
			}
		}
		b.WriteString(name)
		b.WriteString(">\n")

		names := append([]string(nil), n.Attrs.Names()...)
		sort.Strings(names)
		for _, attrName := range names {
			v, _ := n.Attrs.Get(attrName)
			indent(b, depth+1)
			if n.Namespace != dom.HTML {
				if prefix, rest, ok := foreignAttrPrefix(attrName); ok {
					b.WriteString(prefix + " " + rest + "=\"" + v + "\"\n")
					continue
				}
			}
			b.WriteString(attrName + "=\"" + v + "\"\n")
		}

		for _, child := range n.Children() {
			writeTestNode(b, child, depth+1)
		}
	case dom.TextKind:
		indent(b, depth)
		b.WriteString("\"")
		b.WriteString(n.Data)
		b.WriteString("\"\n")
	case dom.CommentKind:
		indent(b, depth)
		b.WriteString("<!-- ")
		b.WriteString(n.Data)
		b.WriteString(" -->\n")
	case dom.DoctypeKind:
		indent(b, depth)
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.DoctypeName)
		if n.PublicID != "" || n.SystemID != "" {
			b.WriteString(" " + strconv.Quote(n.PublicID) + " " + strconv.Quote(n.SystemID))
		}
		b.WriteString(">\n")
	}
}
