package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/htmltag"
)

// isForeignRoot reports whether name switches into a non-HTML namespace
// when opened from HTML context.
func isForeignRoot(name string) (dom.Namespace, bool) {
	switch name {
	case "svg":
		return dom.SVG, true
	case "math":
		return dom.MathML, true
	}
	return "", false
}

// isIntegrationPoint reports whether n is an HTML integration point: an
// SVG/MathML element inside which HTML parsing rules resume.
func isIntegrationPoint(n *dom.Node) bool {
	switch n.Namespace {
	case dom.SVG:
		return htmltag.IsSVGIntegrationPoint(n.Name)
	case dom.MathML:
		return htmltag.IsMathIntegrationPoint(n.Name)
	}
	return false
}

// breaksOut reports whether opening a start tag named name (with the given
// attributes) inside foreign content returns parsing to the HTML
// namespace, per the breakout-tag list plus the font-with-presentation-
// attribute special case.
func breaksOut(name string, attrs *dom.Attributes) bool {
	if htmltag.IsBreakout(name) {
		return true
	}
	if name == "font" {
		if _, ok := attrs.Get("color"); ok {
			return true
		}
		if _, ok := attrs.Get("face"); ok {
			return true
		}
		if _, ok := attrs.Get("size"); ok {
			return true
		}
	}
	return false
}

// nearestHTMLInsertionPoint walks the open-elements stack from the top
// looking for the nearest element that is an HTML integration point or in
// the plain HTML namespace, and returns its stack index (-1 if none). It is
// used when a breakout tag needs an HTML-namespace insertion point to pop
// back to.
func (b *Builder) nearestHTMLInsertionPoint() int {
	for i := b.stack.len() - 1; i >= 0; i-- {
		n := b.stack.nodes[i]
		if n.Namespace == dom.HTML || isIntegrationPoint(n) {
			return i
		}
	}
	return -1
}

// initFragmentContext seeds the open-elements stack and insertion
// namespace for a fragment parse from the supplied context element.
func (b *Builder) initFragmentContext() {
	ctxName := b.fragmentCtx.TagName
	ns := b.fragmentCtx.Namespace
	placeholder := dom.NewElement(ctxName, ns)
	b.stack.push(placeholder)
	if ctxName == "select" {
		b.framesetOk = false
	}
}
