package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/htmltag"
	"github.com/corvidlabs/html5/internal/tokenizer"
)

var tableishEndTags = map[string]bool{
	"table": true, "tbody": true, "thead": true, "tfoot": true,
	"tr": true, "td": true, "th": true, "caption": true, "colgroup": true,
}

func (b *Builder) handleEndTag(tk tokenizer.Token) {
	name := tk.Name

	if b.currentNamespace() != dom.HTML {
		if b.handleForeignEndTag(tk) {
			return
		}
	}

	match := b.findMatchingOpenElement(name)
	if match == nil {
		switch name {
		case "br":
			b.synthesizeBr(tk)
		case "form":
			// silently ignored
		case "body", "html":
			b.afterBody = true
		default:
			b.addErr("unexpected-end-tag", "no open element named "+name, tk.Pos.Line, tk.Pos.Column)
		}
		return
	}

	above := b.stack.above(match)
	if foreignAbove(above) {
		b.stack.popUntilNode(match)
		return
	}

	switch name {
	case "p":
		b.closeP(match)
		return
	case "b":
		if top := b.stack.top(); top != nil && top.Name == "aside" && len(above) == 1 {
			b.hoistTrailingAsideFromFormatting(match, top)
			return
		}
	case "body", "html":
		b.afterBody = true
	}

	if htmltag.IsFormatting(name) && len(above) > 0 {
		if b.tryFormattingSplitRecovery(match, above) {
			return
		}
		if b.tryMisnestedFormattingRecovery(match, above, name) {
			return
		}
	}

	b.stack.popUntilNode(match)
}

// findMatchingOpenElement locates the nearest open element named name,
// requiring HTML namespace for table-structure end tags.
func (b *Builder) findMatchingOpenElement(name string) *dom.Node {
	for i := b.stack.len() - 1; i >= 0; i-- {
		n := b.stack.nodes[i]
		if n.Name != name {
			continue
		}
		if tableishEndTags[name] && n.Namespace != dom.HTML {
			continue
		}
		return n
	}
	return nil
}

func foreignAbove(above []*dom.Node) bool {
	for _, n := range above {
		if n.Namespace != dom.HTML {
			return true
		}
	}
	return false
}

func (b *Builder) synthesizeBr(tk tokenizer.Token) {
	el := dom.NewElement("br", dom.HTML)
	el.Pos = b.position(tk.Pos)
	b.appendRespectingFoster(el)
}

// closeP pops the <p> and clones any formatting elements that were open
// above it as next siblings of the now-closed <p>, reopening them on the
// stack so formatting appears to continue after the paragraph.
func (b *Builder) closeP(p *dom.Node) {
	above := b.stack.above(p)
	b.stack.popUntilNode(p)

	parent := p.Parent
	if parent == nil || len(above) == 0 {
		return
	}
	insertAfter := p
	var prevClone *dom.Node
	for _, n := range above {
		clone := n.CloneNode(false)
		if prevClone != nil {
			prevClone.AppendChild(clone)
		} else {
			parent.InsertBefore(clone, nodeAfter(parent, insertAfter))
		}
		b.stack.push(clone)
		prevClone = clone
	}
}

// nodeAfter returns the sibling immediately following target among
// parent's children, or nil if target is the last child (so InsertBefore
// behaves as an append).
func nodeAfter(parent, target *dom.Node) *dom.Node {
	children := parent.Children()
	for i, c := range children {
		if c == target && i+1 < len(children) {
			return children[i+1]
		}
	}
	return nil
}

// hoistTrailingAsideFromFormatting implements the narrow "</b> closes an
// immediately enclosing <aside>" heuristic: the aside is lifted out from
// under the formatting element and its first child is wrapped in a fresh
// clone of the formatting element.
func (b *Builder) hoistTrailingAsideFromFormatting(formatting, aside *dom.Node) {
	b.stack.popUntilNode(formatting)
	parent := formatting.Parent
	if parent == nil {
		return
	}
	aside.Remove()
	parent.InsertBefore(aside, nodeAfter(parent, formatting))

	first := aside.FirstChild()
	if first == nil {
		return
	}
	wrapper := formatting.CloneNode(false)
	first.Remove()
	wrapper.AppendChild(first)
	aside.InsertBefore(wrapper, aside.FirstChild())
}

// tryFormattingSplitRecovery handles the case where every open element
// above the matched formatting element is itself a formatting element: it
// clones each one, chaining them as nested next-siblings of the closed
// formatting element, and reports success.
func (b *Builder) tryFormattingSplitRecovery(formatting *dom.Node, above []*dom.Node) bool {
	for _, n := range above {
		if !htmltag.IsFormatting(n.Name) {
			return false
		}
	}
	b.stack.popUntilNode(formatting)
	parent := formatting.Parent
	if parent == nil {
		return true
	}
	insertionParent := parent
	after := nodeAfter(parent, formatting)
	var chainParent *dom.Node
	for _, n := range above {
		clone := n.CloneNode(false)
		if chainParent != nil {
			chainParent.AppendChild(clone)
		} else {
			insertionParent.InsertBefore(clone, after)
		}
		b.stack.push(clone)
		chainParent = clone
	}
	return true
}

// tryMisnestedFormattingRecovery handles the case where some non-
// formatting pivot element sits open above the matched formatting
// element: the pivot is relocated to become the next sibling of the
// formatting element, its leading inline (non-element-opening) content is
// wrapped in a clone of the formatting element, and for <a> specifically
// the wrapper is also sprinkled into the pivot's block descendants.
func (b *Builder) tryMisnestedFormattingRecovery(formatting *dom.Node, above []*dom.Node, name string) bool {
	var pivot *dom.Node
	var prefix []*dom.Node
	for _, n := range above {
		if htmltag.IsFormatting(n.Name) {
			prefix = append(prefix, n)
			continue
		}
		pivot = n
		break
	}
	if pivot == nil {
		return false
	}

	b.stack.popUntilNode(formatting)
	parent := formatting.Parent
	if parent == nil {
		return true
	}
	pivot.Remove()
	insertionPoint := parent
	after := nodeAfter(parent, formatting)
	var host *dom.Node
	for _, p := range prefix {
		clone := p.CloneNode(false)
		if host != nil {
			host.AppendChild(clone)
		} else {
			insertionPoint.InsertBefore(clone, after)
		}
		host = clone
	}
	if host != nil {
		host.AppendChild(pivot)
	} else {
		insertionPoint.InsertBefore(pivot, after)
	}

	wrapLeadingInlineChildren(pivot, formatting)
	if name == "a" {
		sprinkleFormattingIntoBlocks(pivot, formatting)
	}

	b.stack.push(pivot)
	if host != nil {
		b.stack.push(host)
	}
	return true
}

// wrapLeadingInlineChildren wraps pivot's leading run of text/formatting
// children in a single clone of formatting, so the reopened formatting
// context still applies to content that was textually inside it.
func wrapLeadingInlineChildren(pivot, formatting *dom.Node) {
	children := pivot.Children()
	if len(children) == 0 {
		return
	}
	end := 0
	for end < len(children) {
		c := children[end]
		if c.Kind == dom.TextKind || htmltag.IsFormatting(c.Name) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return
	}
	wrapper := formatting.CloneNode(false)
	leading := append([]*dom.Node(nil), children[:end]...)
	for _, c := range leading {
		c.Remove()
		wrapper.AppendChild(c)
	}
	pivot.InsertBefore(wrapper, pivot.FirstChild())
}

// sprinkleFormattingIntoBlocks propagates a clone of formatting into the
// first inline-content position of each direct block-element child of
// pivot, approximating how an anchor's link context should keep applying
// past a nested block boundary.
func sprinkleFormattingIntoBlocks(pivot, formatting *dom.Node) {
	for _, child := range pivot.Children() {
		if child.Kind != dom.ElementKind || htmltag.IsFormatting(child.Name) {
			continue
		}
		wrapLeadingInlineChildren(child, formatting)
	}
}
