package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/htmltag"
	"github.com/corvidlabs/html5/internal/tokenizer"
)

var tableSectionChildren = map[string]bool{
	"caption": true, "colgroup": true, "tbody": true,
	"tfoot": true, "thead": true, "tr": true, "td": true, "th": true,
}

func (b *Builder) handleStartTag(tk tokenizer.Token) {
	name := tk.Name
	attrs := tk.Attrs

	if ns, ok := isForeignRoot(name); ok && b.currentNamespace() == dom.HTML {
		b.openForeignRoot(name, ns, tk)
		return
	}

	if b.currentNamespace() != dom.HTML {
		if top := b.stack.top(); top == nil || !isIntegrationPoint(top) {
			if breaksOut(name, &attrs) {
				if idx := b.nearestHTMLInsertionPoint(); idx >= 0 {
					b.stack.truncateTo(idx + 1)
				}
				b.handleStartTagHTML(tk)
				return
			}
			b.openForeignElement(name, b.currentNamespace(), tk)
			return
		}
	}

	b.handleStartTagHTML(tk)
}

func (b *Builder) openForeignRoot(name string, ns dom.Namespace, tk tokenizer.Token) {
	target := b.routeContentInsertionPoint(false)
	el := dom.NewElement(name, ns)
	el.Attrs = tk.Attrs
	el.Pos = b.position(tk.Pos)
	target.AppendChild(el)
	if !tk.SelfClosing {
		b.stack.push(el)
	}
}

// openForeignElement inserts an SVG/MathML element. Names stay lower-case
// in the node model per the general element-name invariant; svgCamelCase
// is consulted only by the test-format serializer, which is where the
// spelling actually needs to resurface.
func (b *Builder) openForeignElement(name string, ns dom.Namespace, tk tokenizer.Token) {
	el := dom.NewElement(name, ns)
	el.Attrs = tk.Attrs
	el.Pos = b.position(tk.Pos)
	b.appendRespectingFoster(el)
	if !tk.SelfClosing {
		b.stack.push(el)
	}
}

// handleStartTagHTML applies the HTML-namespace parent-selection rules.
func (b *Builder) handleStartTagHTML(tk tokenizer.Token) {
	name := tk.Name

	// Explicit html/head/body tags merge their attributes into the
	// scaffolded element instead of creating a new one. In fragment mode
	// there is no scaffolding to merge into, so these fall through and
	// are treated as ordinary elements instead.
	if !b.fragment {
		switch name {
		case "html":
			b.ensureScaffolding()
			mergeAttrsInto(b.htmlElement, tk.Attrs)
			return
		case "head":
			b.ensureScaffolding()
			mergeAttrsInto(b.head, tk.Attrs)
			return
		case "body":
			b.ensureScaffolding()
			if b.body != nil {
				mergeAttrsInto(b.body, tk.Attrs)
			}
			return
		}
	}

	// Rule 1: frameset.
	if name == "frameset" && b.framesetOk && !b.fragment {
		b.ensureScaffolding()
		if b.body != nil {
			b.body.Remove()
			b.stack.popUntilNode(b.htmlElement)
			b.body = nil
		}
		b.frameset = dom.NewElement("frameset", dom.HTML)
		b.frameset.Attrs = tk.Attrs
		b.htmlElement.AppendChild(b.frameset)
		b.stack.push(b.frameset)
		return
	}

	var formattingRun []*dom.Node
	if htmltag.IsPCloser(name) || name == "p" {
		formattingRun = b.closeOrReopenFormattingForBlock(name)
	}

	switch name {
	case "li":
		if b.stack.inListItemScope("li") {
			b.stack.popUntil("li")
		}
	case "dd", "dt":
		for _, other := range []string{"dd", "dt"} {
			if b.stack.inListItemScope(other) {
				b.stack.popUntil(other)
				break
			}
		}
	case "rb", "rtc":
		if b.stack.inScope("ruby", map[string]bool{"html": true}) {
			if top := b.stack.top(); top != nil && (top.Name == "rb" || top.Name == "rtc" || top.Name == "rt" || top.Name == "rp") {
				b.stack.pop()
			}
		}
	case "rt", "rp":
		for _, other := range []string{"rt", "rp"} {
			if top := b.stack.top(); top != nil && top.Name == other {
				b.stack.pop()
			}
		}
	case "a":
		if idx := b.stack.indexOfName("a"); idx >= 0 {
			if top := b.stack.top(); top != nil && top.Name == "a" {
				b.stack.pop()
			} else if enclosing := b.stack.top(); enclosing != nil && (enclosing.Name == "div" || enclosing.Name == "address") {
				b.reopenOpenAnchorIn(enclosing)
			}
		}
	case "option", "optgroup", "hr", "input", "keygen", "textarea":
		if name != "input" && name != "hr" && b.stack.indexOfName("select") >= 0 {
			// fall through: these simply close a previous option/optgroup
			// by ordinary nesting, handled below by table/select routing.
		}
	}

	if idx := b.stack.indexOfName("select"); idx >= 0 {
		switch name {
		case "option", "optgroup":
			if top := b.stack.top(); top != nil && (top.Name == "option" || top.Name == "optgroup") {
				b.stack.pop()
			}
		case "hr":
			if top := b.stack.top(); top != nil && top.Name == "option" {
				b.stack.pop()
			}
		case "input", "keygen", "textarea", "select":
			b.stack.truncateTo(idx)
		}
	}

	if b.handleTableRelatedStart(tk) {
		return
	}

	if name == "p" && len(formattingRun) > 0 {
		target := b.routeContentInsertionPoint(false)
		el := dom.NewElement("p", dom.HTML)
		el.Attrs = tk.Attrs
		el.Pos = b.position(tk.Pos)
		if target.Namespace == dom.HTML && target.Name == "table" {
			b.fosterInsert(target, el)
		} else {
			target.AppendChild(el)
		}
		b.reopenFormattingRun(el, formattingRun)
		return
	}

	b.openOrdinaryElement(tk)
}

// openOrdinaryElement performs the default element insertion: route to
// head or body as appropriate, append, and push unless void or
// self-closing.
func (b *Builder) openOrdinaryElement(tk tokenizer.Token) {
	name := tk.Name
	target := b.routeContentInsertionPoint(htmltag.IsHeadTag(name))
	el := dom.NewElement(name, dom.HTML)
	el.Attrs = tk.Attrs
	el.Pos = b.position(tk.Pos)

	if target != nil && target.Name == "table" && target.Namespace == dom.HTML && !tableSectionChildren[name] {
		b.fosterInsert(target, el)
	} else {
		target.AppendChild(el)
	}

	if name == "input" {
		if t, _ := tk.Attrs.Get("type"); !equalFold(t, "hidden") {
			b.framesetOk = false
		}
	}

	if htmltag.IsVoid(name) || tk.SelfClosing {
		return
	}
	b.stack.push(el)
}

// mergeAttrsInto merges attrs into el's existing attribute set. Attributes
// already present on el keep their original value, per Attributes' first-
// write-wins semantics.
func mergeAttrsInto(el *dom.Node, attrs dom.Attributes) {
	for _, name := range attrs.Names() {
		v, _ := attrs.Get(name)
		el.Attrs.Set(name, v)
	}
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// reopenOpenAnchorIn reparents the currently open <a> element so it
// reopens as a child of enclosing instead of wherever it was originally
// opened, implementing the "<a> inside <div>/<address>" rule.
func (b *Builder) reopenOpenAnchorIn(enclosing *dom.Node) {
	idx := b.stack.indexOfName("a")
	if idx < 0 {
		return
	}
	anchor := b.stack.nodes[idx]
	clone := anchor.CloneNode(false)
	enclosing.AppendChild(clone)
	b.stack.truncateTo(idx)
	b.stack.push(clone)
}
