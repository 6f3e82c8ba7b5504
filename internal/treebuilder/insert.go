package treebuilder

import "github.com/corvidlabs/html5/dom"

// appendRespectingFoster appends node to the current insertion point,
// unless that point is a <table> element, in which case node is
// foster-parented: inserted into the table's own parent immediately
// before the table.
func (b *Builder) appendRespectingFoster(node *dom.Node) {
	target := b.currentInsertionTarget()
	if target != nil && target.Namespace == dom.HTML && target.Name == "table" {
		b.fosterInsert(target, node)
		return
	}
	target.AppendChild(node)
}

func (b *Builder) fosterInsert(table, node *dom.Node) {
	parent := table.Parent
	if parent == nil {
		b.root.AppendChild(node)
		return
	}
	parent.InsertBefore(node, table)
}

// routeContentInsertionPoint resolves, and if necessary adjusts the open-
// elements stack to reach, the element new non-text content should be
// appended to: materializing scaffolding on first use, and switching from
// head to body once content that does not belong in head arrives.
func (b *Builder) routeContentInsertionPoint(tagIsHeadTag bool) *dom.Node {
	b.ensureScaffolding()
	if b.fragment {
		return b.currentInsertionTarget()
	}
	top := b.stack.top()
	switch {
	case top == b.htmlElement:
		if tagIsHeadTag && len(b.body.Children()) == 0 {
			b.stack.push(b.head)
			return b.head
		}
		b.stack.push(b.body)
		return b.body
	case top == b.head && !tagIsHeadTag:
		b.stack.pop()
		b.stack.push(b.body)
		return b.body
	}
	return top
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			continue
		}
		return false
	}
	return true
}
