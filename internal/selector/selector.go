// Package selector implements the CSS-like selector subset spec.md §6
// reserves for Parsed.Query/QueryOne: type selectors, #id, .class, and the
// descendant combinator (whitespace between compound selectors). No
// selector-engine third-party library (cascadia or otherwise) appears
// anywhere in the retrieval pack, so this is written directly against the
// node model rather than wired to a dependency.
package selector

import (
	"strings"

	"github.com/corvidlabs/html5/dom"
)

// compound is a single type/#id/.class bundle with no combinator, e.g.
// "div.card#main" or "*".
type compound struct {
	tag     string // "" means no type constraint; "*" also means no constraint
	id      string
	classes []string
}

func (c compound) matches(n *dom.Node) bool {
	if n.Kind != dom.ElementKind {
		return false
	}
	if c.tag != "" && c.tag != "*" && n.Name != c.tag {
		return false
	}
	if c.id != "" {
		v, ok := n.Attrs.Get("id")
		if !ok || v != c.id {
			return false
		}
	}
	for _, class := range c.classes {
		if !hasClass(n, class) {
			return false
		}
	}
	return true
}

func hasClass(n *dom.Node, class string) bool {
	v, ok := n.Attrs.Get("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Selector is a parsed descendant-combinator chain: each element must be
// found as a descendant of a match for the previous one.
type Selector struct {
	chain []compound
}

// Parse compiles a selector string. It supports a space-separated chain of
// compound selectors, each an optional type name followed by any number of
// #id and .class parts (at most one #id is meaningful; later ones simply
// narrow further). An empty or malformed compound is treated as "*".
func Parse(s string) Selector {
	fields := strings.Fields(s)
	chain := make([]compound, 0, len(fields))
	for _, f := range fields {
		chain = append(chain, parseCompound(f))
	}
	return Selector{chain: chain}
}

func parseCompound(s string) compound {
	var c compound
	i := 0
	for i < len(s) && s[i] != '#' && s[i] != '.' {
		i++
	}
	c.tag = s[:i]
	for i < len(s) {
		switch s[i] {
		case '#':
			j := i + 1
			for j < len(s) && s[j] != '#' && s[j] != '.' {
				j++
			}
			c.id = s[i+1 : j]
			i = j
		case '.':
			j := i + 1
			for j < len(s) && s[j] != '#' && s[j] != '.' {
				j++
			}
			if j > i+1 {
				c.classes = append(c.classes, s[i+1:j])
			}
			i = j
		default:
			i++
		}
	}
	return c
}

// Query returns every descendant of root matching sel, in document order.
func Query(root *dom.Node, sel Selector) []*dom.Node {
	if len(sel.chain) == 0 {
		return nil
	}
	var out []*dom.Node
	collect(root, sel.chain, &out)
	// Nested matches for an ancestor link reach the same descendant more
	// than once; keep only the first, which is already in document order.
	seen := make(map[*dom.Node]bool, len(out))
	uniq := out[:0]
	for _, n := range out {
		if !seen[n] {
			seen[n] = true
			uniq = append(uniq, n)
		}
	}
	return uniq
}

// QueryOne returns the first descendant of root matching sel, or nil.
func QueryOne(root *dom.Node, sel Selector) *dom.Node {
	matches := Query(root, sel)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// collect walks the tree looking for any descendant matching the full
// chain, where the chain's head must match n (or one of n's ancestors
// implicitly, handled by the recursive descent from root) and each
// subsequent link must match some descendant of the previous link's match.
func collect(n *dom.Node, chain []compound, out *[]*dom.Node) {
	for _, child := range n.Children() {
		if chain[0].matches(child) {
			if len(chain) == 1 {
				*out = append(*out, child)
			} else {
				collectRemaining(child, chain[1:], out)
			}
		}
		collect(child, chain, out)
	}
}

// collectRemaining looks for descendants of anchor satisfying the rest of
// the combinator chain.
func collectRemaining(anchor *dom.Node, chain []compound, out *[]*dom.Node) {
	for _, child := range anchor.Children() {
		if chain[0].matches(child) {
			if len(chain) == 1 {
				*out = append(*out, child)
			} else {
				collectRemaining(child, chain[1:], out)
			}
		}
		collectRemaining(child, chain, out)
	}
}
