package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/htmltag"
)

// closeOrReopenFormattingForBlock implements the <p> auto-close rule and
// its formatting-preserving special case: opening name, a P-closer,
// closes any open <p> in button scope. When the elements directly open
// above the insertion point are a run of formatting elements, opening
// name as <p> pops that run and records it so the caller can reopen
// clones of those formatting elements inside the freshly opened <p>,
// making the formatting appear to continue around the paragraph break
// rather than being orphaned above it.
func (b *Builder) closeOrReopenFormattingForBlock(name string) []*dom.Node {
	hasOpenP := b.stack.inButtonScope("p")
	if !hasOpenP && name != "p" {
		return nil
	}

	var run []*dom.Node
	if name == "p" {
		run = b.collectTrailingFormattingRun()
	}
	if hasOpenP {
		b.stack.popUntil("p")
	}
	return run
}

// collectTrailingFormattingRun pops and returns the consecutive formatting
// elements sitting at the top of the open-elements stack, topmost first.
func (b *Builder) collectTrailingFormattingRun() []*dom.Node {
	var run []*dom.Node
	for {
		top := b.stack.top()
		if top == nil || !htmltag.IsFormatting(top.Name) {
			break
		}
		run = append(run, top)
		b.stack.pop()
	}
	return run
}

// reopenFormattingRun pushes a freshly opened block element el onto the
// stack, then reopens clones of run (innermost-first as collected) inside
// it, restoring their original relative nesting.
func (b *Builder) reopenFormattingRun(el *dom.Node, run []*dom.Node) {
	b.stack.push(el)
	for i := len(run) - 1; i >= 0; i-- {
		clone := run[i].CloneNode(false)
		b.currentInsertionTarget().AppendChild(clone)
		b.stack.push(clone)
	}
}
