// Package treebuilder consumes a token stream and produces a document
// tree: it materializes the html/head/body scaffolding, switches
// namespaces for foreign content, foster-parents stray table content, and
// recovers from a fixed set of common element-misnesting patterns instead
// of the full adoption-agency algorithm.
package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/perr"
	"github.com/corvidlabs/html5/internal/tokenizer"

	"github.com/sirupsen/logrus"
)

// FragmentContext names the element a fragment parse behaves as if it were
// parsed inside, per the fragment-mode entry point.
type FragmentContext struct {
	TagName   string
	Namespace dom.Namespace
}

// Options configures a single tree-build pass.
type Options struct {
	Fragment          bool
	FragmentContext   FragmentContext
	TrackNodeLocations bool
}

// Builder drives token-by-token tree construction.
type Builder struct {
	root  *dom.Node
	stack elementStack

	htmlElement *dom.Node
	head        *dom.Node
	body        *dom.Node
	frameset    *dom.Node

	seenDoctype bool
	afterBody   bool
	framesetOk  bool

	fragment    bool
	fragmentCtx FragmentContext

	trackPositions bool

	errs *perr.Log
	log  *logrus.Entry
}

// New constructs a Builder for a document-mode parse, or for a fragment-mode
// parse when opts.Fragment is set.
func New(opts Options, errs *perr.Log) *Builder {
	b := &Builder{
		framesetOk:     true,
		errs:           errs,
		log:            logrus.WithField("component", "treebuilder"),
		trackPositions: opts.TrackNodeLocations,
	}
	if opts.Fragment {
		b.fragment = true
		b.fragmentCtx = opts.FragmentContext
		if b.fragmentCtx.TagName == "" {
			b.fragmentCtx.TagName = "div"
		}
		if b.fragmentCtx.Namespace == "" {
			b.fragmentCtx.Namespace = dom.HTML
		}
		b.root = dom.NewDocumentFragment()
		b.initFragmentContext()
	} else {
		b.root = dom.NewDocument()
	}
	return b
}

// Build drains tok and returns the finished tree root.
func (b *Builder) Build(tok *tokenizer.Tokenizer) *dom.Node {
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		b.dispatch(tk)
	}
	b.finalize()
	return b.root
}

func (b *Builder) dispatch(tk tokenizer.Token) {
	b.log.WithFields(logrus.Fields{"kind": tk.Kind, "name": tk.Name}).Debug("dispatching token")
	switch tk.Kind {
	case tokenizer.Doctype:
		b.handleDoctype(tk)
	case tokenizer.Comment:
		b.handleComment(tk)
	case tokenizer.Text:
		b.handleText(tk)
	case tokenizer.StartTag:
		b.handleStartTag(tk)
	case tokenizer.EndTag:
		b.handleEndTag(tk)
	}
}

func (b *Builder) addErr(code, message string, line, column int) {
	b.errs.Add(perr.TreeBuilder, code, message, line, column)
}

func (b *Builder) currentNamespace() dom.Namespace {
	if top := b.stack.top(); top != nil {
		return top.Namespace
	}
	return dom.HTML
}

// position converts a tokenizer position into a node Position, or nil when
// location tracking is disabled.
func (b *Builder) position(pos tokenizer.Position) *dom.Position {
	if !b.trackPositions {
		return nil
	}
	return &dom.Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}

// ensureScaffolding materializes html/head/(body) the first time real
// content needs a home, per the document-mode scaffolding rule. It is a
// no-op in fragment mode.
func (b *Builder) ensureScaffolding() {
	if b.fragment || b.htmlElement != nil {
		return
	}
	b.htmlElement = dom.NewElement("html", dom.HTML)
	b.root.AppendChild(b.htmlElement)
	b.stack.push(b.htmlElement)

	b.head = dom.NewElement("head", dom.HTML)
	b.htmlElement.AppendChild(b.head)

	if b.frameset == nil {
		b.body = dom.NewElement("body", dom.HTML)
		b.htmlElement.AppendChild(b.body)
	}
}

// currentInsertionTarget returns the node new children are appended to:
// the top of the open-elements stack, or (before scaffolding exists) the
// document/fragment root. In fragment mode the context element is never
// part of the tree, so while it is the top, children go to the fragment
// root instead.
func (b *Builder) currentInsertionTarget() *dom.Node {
	if top := b.stack.top(); top != nil {
		if b.fragment && top.Parent == nil && top == b.stack.nodes[0] {
			return b.root
		}
		return top
	}
	return b.root
}
