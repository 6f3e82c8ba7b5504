package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/tokenizer"
)

var tableSectionNames = map[string]bool{"tbody": true, "thead": true, "tfoot": true}

// handleTableRelatedStart implements rules 3, 4 and 8: foster parenting of
// non-table-structure content while a <table> is the insertion point,
// synthesis of tbody/tr when cells or rows arrive without an enclosing
// section, and the form/input special cases inside tables. It reports
// whether it fully handled tk, short-circuiting the ordinary-element path.
func (b *Builder) handleTableRelatedStart(tk tokenizer.Token) bool {
	name := tk.Name
	top := b.stack.top()

	if name == "form" && b.stack.indexOfName("table") >= 0 {
		table := b.stack.nearestOfName("table")
		el := dom.NewElement("form", dom.HTML)
		el.Attrs = tk.Attrs
		el.Pos = b.position(tk.Pos)
		table.AppendChild(el)
		return true
	}

	if name == "input" && b.stack.indexOfName("table") >= 0 {
		if t, _ := tk.Attrs.Get("type"); equalFold(t, "hidden") {
			table := b.stack.nearestOfName("table")
			el := dom.NewElement("input", dom.HTML)
			el.Attrs = tk.Attrs
			el.Pos = b.position(tk.Pos)
			table.AppendChild(el)
			return true
		}
	}

	if name == "td" || name == "th" {
		b.ensureRowContext(tk)
	}
	if name == "tr" {
		b.ensureSectionContext(tk)
	}

	if top != nil && top.Namespace == dom.HTML && top.Name == "table" &&
		!tableSectionChildren[name] {
		el := dom.NewElement(name, dom.HTML)
		el.Attrs = tk.Attrs
		el.Pos = b.position(tk.Pos)
		b.fosterInsert(top, el)
		if !tk.SelfClosing {
			b.stack.push(el)
		}
		return true
	}

	return false
}

// ensureRowContext guarantees a <tbody><tr> ancestry exists for a bare
// <td>/<th> inside the nearest open table.
func (b *Builder) ensureRowContext(tk tokenizer.Token) {
	if b.stack.top() != nil && b.stack.top().Name == "tr" {
		return
	}
	b.ensureSectionContext(tk)
	if b.stack.top() != nil && b.stack.top().Name == "tr" {
		return
	}
	section := b.stack.top()
	tr := dom.NewElement("tr", dom.HTML)
	tr.Pos = b.position(tk.Pos)
	section.AppendChild(tr)
	b.stack.push(tr)
}

// ensureSectionContext guarantees a <tbody> ancestry exists for a bare
// <tr> (or cell) inside the nearest open table.
func (b *Builder) ensureSectionContext(tk tokenizer.Token) {
	top := b.stack.top()
	if top != nil && tableSectionNames[top.Name] {
		return
	}
	table := b.stack.nearestOfName("table")
	if table == nil {
		return
	}
	tbody := dom.NewElement("tbody", dom.HTML)
	tbody.Pos = b.position(tk.Pos)
	table.AppendChild(tbody)
	b.stack.push(tbody)
}
