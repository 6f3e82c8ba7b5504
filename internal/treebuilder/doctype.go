package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/tokenizer"
)

func (b *Builder) handleDoctype(tk tokenizer.Token) {
	b.seenDoctype = true
	if b.fragment {
		return
	}
	pub, sys := "", ""
	if tk.PublicID != nil {
		pub = *tk.PublicID
	}
	if tk.SystemID != nil {
		sys = *tk.SystemID
	}
	node := dom.NewDoctype(tk.DoctypeName, pub, sys)
	node.Pos = b.position(tk.Pos)
	b.root.AppendChild(node)
}
