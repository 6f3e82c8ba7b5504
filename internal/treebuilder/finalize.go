package treebuilder

import "github.com/corvidlabs/html5/dom"

// finalize runs once the token stream is exhausted: it reports unclosed
// elements, materializes scaffolding if the input never produced real
// content, and fills the <selectedcontent> inside every <select><button>.
func (b *Builder) finalize() {
	b.reportUnclosedElements()
	if !b.fragment {
		b.ensureScaffolding()
	}
	b.populateSelectedContent(b.root)
}

func (b *Builder) reportUnclosedElements() {
	scaffold := map[*dom.Node]bool{b.htmlElement: true, b.head: true, b.body: true, b.frameset: true}
	for i := 0; i < b.stack.len(); i++ {
		n := b.stack.nodes[i]
		if scaffold[n] {
			continue
		}
		pos := n.Pos
		line, col := 0, 0
		if pos != nil {
			line, col = pos.Line, pos.Column
		}
		b.addErr("expected-closing-tag-but-got-eof", "unclosed <"+n.Name+">", line, col)
	}
}

// populateSelectedContent fills <selectedcontent> inside every
// <select><button> with a deep clone of the selected option's children
// (the first option carrying a "selected" attribute, or else the first
// option), walking the whole tree since multiple selects may exist.
func (b *Builder) populateSelectedContent(n *dom.Node) {
	if n.Kind == dom.ElementKind && n.Namespace == dom.HTML && n.Name == "select" {
		b.populateSelectedContentFor(n)
	}
	for _, child := range n.Children() {
		b.populateSelectedContent(child)
	}
}

func (b *Builder) populateSelectedContentFor(selectEl *dom.Node) {
	var button, target *dom.Node
	var options []*dom.Node
	for _, c := range selectEl.Children() {
		if c.Kind != dom.ElementKind {
			continue
		}
		switch c.Name {
		case "button":
			button = c
		case "option":
			options = append(options, c)
		}
	}
	if button == nil || len(options) == 0 {
		return
	}
	for _, c := range button.Children() {
		if c.Kind == dom.ElementKind && c.Name == "selectedcontent" {
			target = c
			break
		}
	}
	if target == nil {
		return
	}

	chosen := options[0]
	for _, o := range options {
		if _, ok := o.Attrs.Get("selected"); ok {
			chosen = o
			break
		}
	}

	existing := append([]*dom.Node(nil), target.Children()...)
	for _, c := range existing {
		c.Remove()
	}
	for _, c := range chosen.Children() {
		target.AppendChild(c.CloneNode(true))
	}
}
