package treebuilder

import "github.com/corvidlabs/html5/internal/tokenizer"

// handleForeignEndTag closes the nearest open foreign-namespace element
// named tk.Name, if one is open above the nearest HTML insertion point.
// It reports whether it fully handled the end tag.
func (b *Builder) handleForeignEndTag(tk tokenizer.Token) bool {
	htmlBoundary := b.nearestHTMLInsertionPoint()
	for i := b.stack.len() - 1; i > htmlBoundary; i-- {
		if b.stack.nodes[i].Name == tk.Name {
			b.stack.truncateTo(i)
			return true
		}
	}
	return false
}
