// Package html5 is the public entry point: it wires the tokenizer and tree
// builder into document and fragment parsing, a tokenizer-only event
// stream, and the query/serialization conveniences the rest of this module
// implements (internal/selector, internal/serialize).
package html5

import (
	"github.com/pkg/errors"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/perr"
	"github.com/corvidlabs/html5/internal/selector"
	"github.com/corvidlabs/html5/internal/serialize"
	"github.com/corvidlabs/html5/internal/tokenizer"
	"github.com/corvidlabs/html5/internal/treebuilder"
)

// FragmentContext names the element a fragment parse behaves as if it were
// parsed inside.
type FragmentContext struct {
	TagName   string
	Namespace string // "html" (default), "svg", or "math"
}

// Options configures a parse. The zero value parses a full document with
// errors discarded and no node positions tracked.
type Options struct {
	Fragment        bool
	FragmentContext FragmentContext

	CollectErrors bool
	Strict        bool // implies CollectErrors

	TrackNodeLocations bool

	Encoding string

	Sanitize *bool
	Safe     *bool
}

// validate rejects option combinations spec.md calls out as conflicting:
// Sanitize and Safe set to different non-null values.
func (o Options) validate() error {
	if o.Sanitize != nil && o.Safe != nil && *o.Sanitize != *o.Safe {
		return errors.New("html5: conflicting sanitize/safe option values")
	}
	return nil
}

func (o Options) namespace() dom.Namespace {
	switch o.FragmentContext.Namespace {
	case "svg":
		return dom.SVG
	case "math":
		return dom.MathML
	default:
		return dom.HTML
	}
}

// Parsed is the result of a successful parse.
type Parsed struct {
	Root     *dom.Node
	Errors   []perr.Error
	Encoding string
}

// Query returns every node matching the CSS-like selector sel, in document
// order.
func (p *Parsed) Query(sel string) []*dom.Node {
	return selector.Query(p.Root, selector.Parse(sel))
}

// QueryOne returns the first node matching sel, or nil.
func (p *Parsed) QueryOne(sel string) *dom.Node {
	return selector.QueryOne(p.Root, selector.Parse(sel))
}

// ToHTML renders the parsed tree back to an HTML string.
func (p *Parsed) ToHTML() string {
	return serialize.ToHTML(p.Root)
}

// ToText concatenates every text node under the root, in document order.
func (p *Parsed) ToText() string {
	var b []byte
	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		if n.Kind == dom.TextKind {
			b = append(b, n.Data...)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(p.Root)
	return string(b)
}

// Parse parses input as a full document.
func Parse(input string, opts Options) (*Parsed, error) {
	return run(input, opts, false)
}

// ParseFragment parses input as a fragment inside the context
// opts.FragmentContext describes (default: a <div> in the HTML namespace).
func ParseFragment(input string, opts Options) (*Parsed, error) {
	opts.Fragment = true
	return run(input, opts, true)
}

func run(input string, opts Options, fragment bool) (*Parsed, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	collect := opts.CollectErrors || opts.Strict
	errs := perr.NewLog(collect)

	tok := tokenizer.New(input, errs)
	b := treebuilder.New(treebuilder.Options{
		Fragment: fragment,
		FragmentContext: treebuilder.FragmentContext{
			TagName:   firstNonEmpty(opts.FragmentContext.TagName, "div"),
			Namespace: opts.namespace(),
		},
		TrackNodeLocations: opts.TrackNodeLocations,
	}, errs)

	root := b.Build(tok)
	sorted := errs.Errors()

	if opts.Strict && len(sorted) > 0 {
		first := sorted[0]
		return nil, errors.Wrap(first, "html5: strict-mode parse error")
	}

	return &Parsed{Root: root, Errors: sorted, Encoding: opts.Encoding}, nil
}

func firstNonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// EventType names the kind of a Stream event.
type EventType string

const (
	EventText    EventType = "text"
	EventStart   EventType = "start"
	EventEnd     EventType = "end"
	EventComment EventType = "comment"
	EventDoctype EventType = "doctype"
)

// Event is a single coalesced tokenizer-level event, as produced by Stream.
type Event struct {
	Type EventType

	Text string

	Tag   string
	Attrs map[string]string

	PublicID *string
	SystemID *string
}

// Stream drives only the tokenizer (no tree construction) and returns the
// coalesced event sequence spec.md §6 describes: adjacent text tokens
// merge into one "text" event, and a self-closing start tag is followed by
// a synthetic "end" event.
func Stream(input string, opts Options) []Event {
	errs := perr.NewLog(opts.CollectErrors || opts.Strict)
	tok := tokenizer.New(input, errs)

	var events []Event
	var pendingText []byte

	flushText := func() {
		if len(pendingText) == 0 {
			return
		}
		events = append(events, Event{Type: EventText, Text: string(pendingText)})
		pendingText = nil
	}

	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		switch tk.Kind {
		case tokenizer.Text:
			pendingText = append(pendingText, tk.Data...)
		case tokenizer.StartTag:
			flushText()
			attrs := make(map[string]string, tk.Attrs.Len())
			for _, name := range tk.Attrs.Names() {
				v, _ := tk.Attrs.Get(name)
				attrs[name] = v
			}
			events = append(events, Event{Type: EventStart, Tag: tk.Name, Attrs: attrs})
			if tk.SelfClosing {
				events = append(events, Event{Type: EventEnd, Tag: tk.Name})
			}
		case tokenizer.EndTag:
			flushText()
			events = append(events, Event{Type: EventEnd, Tag: tk.Name})
		case tokenizer.Comment:
			flushText()
			events = append(events, Event{Type: EventComment, Text: tk.Data})
		case tokenizer.Doctype:
			flushText()
			events = append(events, Event{
				Type:     EventDoctype,
				Tag:      tk.DoctypeName,
				PublicID: tk.PublicID,
				SystemID: tk.SystemID,
			})
		}
	}
	flushText()
	return events
}
