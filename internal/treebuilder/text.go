package treebuilder

import (
	"strings"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/tokenizer"
)

func (b *Builder) handleText(tk tokenizer.Token) {
	data := tk.Data
	if data == "" {
		return
	}

	top := b.stack.top()
	ns := dom.HTML
	if top != nil {
		ns = top.Namespace
	}

	data = b.stripOrReplaceNUL(data, top, ns)
	if data == "" {
		return
	}

	if top != nil && top.Namespace == dom.HTML && top.Name == "colgroup" {
		b.insertColgroupText(data, tk)
		return
	}

	if top != nil && top.Namespace == dom.HTML && top.Name == "pre" &&
		len(top.Children()) == 0 && strings.HasPrefix(data, "\n") {
		data = data[1:]
		if data == "" {
			return
		}
	}

	if !b.fragment && b.body == nil && isAllWhitespace(data) && b.framesetOk {
		// Whitespace before the document has committed to a body is
		// insignificant and does not itself force scaffolding.
		return
	}

	if !isAllWhitespace(data) {
		b.framesetOk = false
	}

	target := b.routeContentInsertionPoint(false)
	node := dom.NewText(data)
	node.Pos = b.position(tk.Pos)
	if target != nil && target.Namespace == dom.HTML && target.Name == "table" {
		b.fosterInsert(target, node)
		return
	}
	target.AppendChild(node)
}

// stripOrReplaceNUL applies the NUL-handling rule: NUL becomes U+FFFD
// inside script/style/plaintext and inside true foreign content, and is
// stripped only inside HTML integration points.
func (b *Builder) stripOrReplaceNUL(data string, top *dom.Node, ns dom.Namespace) string {
	if !strings.ContainsRune(data, 0) {
		return data
	}
	if top != nil && ns == dom.HTML {
		switch top.Name {
		case "script", "style", "plaintext":
			return strings.ReplaceAll(data, "\x00", "�")
		}
		return strings.ReplaceAll(data, "\x00", "")
	}
	if top != nil && isIntegrationPoint(top) {
		return strings.ReplaceAll(data, "\x00", "")
	}
	// True foreign content (SVG/MathML outside an integration point).
	return strings.ReplaceAll(data, "\x00", "�")
}

// insertColgroupText splits text inside <colgroup>: leading whitespace
// stays as a child of the colgroup, and any non-whitespace remainder is
// foster-parented, matching real parsers treating <colgroup> as unable to
// host ordinary content.
func (b *Builder) insertColgroupText(data string, tk tokenizer.Token) {
	i := 0
	for i < len(data) && isWhitespaceByte(data[i]) {
		i++
	}
	top := b.stack.top()
	if i > 0 {
		node := dom.NewText(data[:i])
		node.Pos = b.position(tk.Pos)
		top.AppendChild(node)
	}
	if i < len(data) {
		node := dom.NewText(data[i:])
		node.Pos = b.position(tk.Pos)
		b.fosterInsert(top.Parent, node) // colgroup's table is its parent
	}
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
