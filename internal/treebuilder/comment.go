package treebuilder

import (
	"strings"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/tokenizer"
)

// handleComment places a comment node per the attach-point rules: before
// the document element exists, and again once afterBody is set, comments
// attach to the root; a '?'-prefixed comment (a bogus processing
// instruction) goes at the very front of the root; otherwise comments land
// wherever the current insertion point is, except that between an empty
// head and empty body they go before the head.
func (b *Builder) handleComment(tk tokenizer.Token) {
	if text, ok := cdataPayload(tk.Data); ok && b.currentNamespace() != dom.HTML {
		tk.Data = text
		b.handleText(tk)
		return
	}

	node := dom.NewComment(tk.Data)
	node.Pos = b.position(tk.Pos)

	if b.fragment {
		b.currentInsertionTarget().AppendChild(node)
		return
	}

	if strings.HasPrefix(tk.Data, "?") {
		b.root.InsertBefore(node, b.root.FirstChild())
		return
	}

	if b.htmlElement == nil || b.afterBody {
		b.root.AppendChild(node)
		return
	}

	if b.currentInsertionTarget() == b.htmlElement && b.head != nil &&
		len(b.head.Children()) == 0 && (b.body == nil || len(b.body.Children()) == 0) {
		b.htmlElement.InsertBefore(node, b.head)
		return
	}

	b.currentInsertionTarget().AppendChild(node)
}

// cdataPayload unwraps the tokenizer's "[CDATA[...]]" comment encoding,
// reporting the enclosed text and ok=true if tk.Data is in fact a wrapped
// CDATA section.
func cdataPayload(data string) (string, bool) {
	if !strings.HasPrefix(data, "[CDATA[") || !strings.HasSuffix(data, "]]") {
		return "", false
	}
	return data[len("[CDATA[") : len(data)-2], true
}
