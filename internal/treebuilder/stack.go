package treebuilder

import "github.com/corvidlabs/html5/dom"

// elementStack is the open-elements stack: a growable sequence whose
// bottom is the outermost open element (the html element, or a fragment
// parse's context element; the root node itself is never pushed) and
// whose top is the current insertion point.
// Pops and truncations dominate; both are O(1) slice operations.
type elementStack struct {
	nodes []*dom.Node
}

func (s *elementStack) push(n *dom.Node) { s.nodes = append(s.nodes, n) }

func (s *elementStack) pop() *dom.Node {
	if len(s.nodes) == 0 {
		return nil
	}
	n := s.nodes[len(s.nodes)-1]
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n
}

func (s *elementStack) top() *dom.Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[len(s.nodes)-1]
}

func (s *elementStack) len() int { return len(s.nodes) }

// truncateTo shrinks the stack to length n, discarding everything above.
func (s *elementStack) truncateTo(n int) { s.nodes = s.nodes[:n] }

// indexOf returns the stack index of n, or -1.
func (s *elementStack) indexOf(n *dom.Node) int {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		if s.nodes[i] == n {
			return i
		}
	}
	return -1
}

// indexOfName returns the index of the topmost open element whose name
// equals name, in any namespace, or -1.
func (s *elementStack) indexOfName(name string) int {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		if s.nodes[i].Name == name {
			return i
		}
	}
	return -1
}

// popUntil pops elements until (and including) the topmost element named
// name has been popped. It reports whether a match was found; without one
// the stack is left unchanged.
func (s *elementStack) popUntil(name string) bool {
	idx := s.indexOfName(name)
	if idx < 0 {
		return false
	}
	s.truncateTo(idx)
	return true
}

// popUntilNode pops elements until (and including) n. It reports whether
// n was found; if it was not, the stack is left unchanged.
func (s *elementStack) popUntilNode(n *dom.Node) bool {
	idx := s.indexOf(n)
	if idx < 0 {
		return false
	}
	s.truncateTo(idx)
	return true
}

// above returns the open elements above (exclusive of) n, bottom-to-top,
// or nil if n is not on the stack.
func (s *elementStack) above(n *dom.Node) []*dom.Node {
	idx := s.indexOf(n)
	if idx < 0 {
		return nil
	}
	return s.nodes[idx+1:]
}

var defaultScopeStopTags = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true,
	"td": true, "th": true, "marquee": true, "object": true,
	"template": true,
}

var listItemScopeStopTags = mergeSets(defaultScopeStopTags, map[string]bool{
	"ol": true, "ul": true,
})

var buttonScopeStopTags = mergeSets(defaultScopeStopTags, map[string]bool{
	"button": true,
})

var tableScopeStopTags = map[string]bool{
	"html": true, "table": true, "template": true,
}

var selectScopeStopTags = map[string]bool{} // every element stops select scope except optgroup/option

func mergeSets(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

// inScope reports whether an HTML-namespace element named target is on the
// stack above (or at) the nearest element whose name is in stop.
func (s *elementStack) inScope(target string, stop map[string]bool) bool {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		n := s.nodes[i]
		if n.Namespace == dom.HTML && n.Name == target {
			return true
		}
		if n.Namespace == dom.HTML && stop[n.Name] {
			return false
		}
	}
	return false
}

func (s *elementStack) inDefaultScope(target string) bool { return s.inScope(target, defaultScopeStopTags) }
func (s *elementStack) inListItemScope(target string) bool {
	return s.inScope(target, listItemScopeStopTags)
}
func (s *elementStack) inButtonScope(target string) bool { return s.inScope(target, buttonScopeStopTags) }
func (s *elementStack) inTableScope(target string) bool  { return s.inScope(target, tableScopeStopTags) }

func (s *elementStack) inSelectScope(target string) bool {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		n := s.nodes[i]
		if n.Namespace != dom.HTML {
			continue
		}
		if n.Name == target {
			return true
		}
		if n.Name != "optgroup" && n.Name != "option" {
			return false
		}
	}
	return false
}

// nearestOfName returns the topmost open element named name, or nil.
func (s *elementStack) nearestOfName(name string) *dom.Node {
	idx := s.indexOfName(name)
	if idx < 0 {
		return nil
	}
	return s.nodes[idx]
}
