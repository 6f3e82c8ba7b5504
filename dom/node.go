// Package dom implements the tagged-variant node model the tree builder
// constructs: Document, DocumentFragment, Element (with a Template
// specialisation), Text, Comment and Doctype, plus the structural
// invariants (parent/child consistency, adjacent text coalescing, template
// shadow-content redirection) those nodes must uphold regardless of which
// component mutates them.
package dom

// Kind identifies which of the six node variants a Node is.
type Kind uint8

const (
	DocumentKind Kind = iota
	DocumentFragmentKind
	ElementKind
	TextKind
	CommentKind
	DoctypeKind
)

func (k Kind) String() string {
	switch k {
	case DocumentKind:
		return "#document"
	case DocumentFragmentKind:
		return "#document-fragment"
	case ElementKind:
		return "element"
	case TextKind:
		return "#text"
	case CommentKind:
		return "#comment"
	case DoctypeKind:
		return "!doctype"
	}
	return "unknown"
}

// Position is the source origin of a node, populated only when the tree
// builder is asked to track node locations.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Node is every node in a parsed tree. Only the fields relevant to Kind are
// meaningful; the zero value of the others is harmless (e.g. a Text node's
// Attrs is simply never read).
type Node struct {
	id     int
	Kind   Kind
	Parent *Node

	children []*Node

	// Element / Template fields.
	Name            string // lower-cased local name
	Namespace       Namespace
	Attrs           Attributes
	templateContent *Node // DocumentFragment; non-nil only for HTML-namespace <template>

	// Text / Comment data.
	Data string

	// Doctype fields.
	DoctypeName string
	PublicID    string
	SystemID    string

	Pos *Position
}

// NodeName returns the node's semantic name: the element tag name, or one of
// "#document", "#document-fragment", "#text", "#comment", "!doctype".
func (n *Node) NodeName() string {
	if n.Kind == ElementKind {
		return n.Name
	}
	return n.Kind.String()
}

// IsTemplate reports whether n is an HTML-namespace <template> element,
// the only element kind that redirects its children into shadow content.
func (n *Node) IsTemplate() bool {
	return n.Kind == ElementKind && n.Namespace == HTML && n.Name == "template"
}

// Content returns the shadow content fragment of a template element,
// creating it on first use. It panics if n is not a template element.
func (n *Node) Content() *Node {
	if !n.IsTemplate() {
		panic("dom: Content called on non-template node")
	}
	if n.templateContent == nil {
		n.templateContent = &Node{Kind: DocumentFragmentKind, id: nextID()}
	}
	return n.templateContent
}

// Children returns the node's children, redirecting through a template's
// shadow content container as required by the template-content invariant.
func (n *Node) Children() []*Node {
	if n.IsTemplate() {
		if n.templateContent == nil {
			return nil
		}
		return n.templateContent.children
	}
	return n.children
}

func (n *Node) childContainer() *Node {
	if n.IsTemplate() {
		return n.Content()
	}
	return n
}

// FirstChild and LastChild are convenience accessors over Children.
func (n *Node) FirstChild() *Node {
	c := n.Children()
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

func (n *Node) LastChild() *Node {
	c := n.Children()
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// AppendChild appends child to n (or to n's template shadow content),
// merging it into a trailing text sibling if both are text nodes.
func (n *Node) AppendChild(child *Node) {
	host := n.childContainer()
	if child.Kind == TextKind {
		if last := host.LastChild(); last != nil && last.Kind == TextKind {
			last.Data += child.Data
			return
		}
	}
	child.Parent = n
	host.children = append(host.children, child)
}

// InsertBefore inserts newChild immediately before ref among n's children.
// If ref is nil, it behaves like AppendChild. Adjacent text nodes on either
// side are coalesced, discarding whichever node the merge absorbs.
func (n *Node) InsertBefore(newChild, ref *Node) {
	host := n.childContainer()
	if ref == nil {
		n.AppendChild(newChild)
		return
	}

	idx := -1
	for i, c := range host.children {
		if c == ref {
			idx = i
			break
		}
	}
	if idx == -1 {
		n.AppendChild(newChild)
		return
	}

	if newChild.Kind == TextKind {
		if idx > 0 && host.children[idx-1].Kind == TextKind {
			host.children[idx-1].Data += newChild.Data
			return
		}
		if host.children[idx].Kind == TextKind {
			host.children[idx].Data = newChild.Data + host.children[idx].Data
			return
		}
	}

	newChild.Parent = n
	host.children = append(host.children, nil)
	copy(host.children[idx+1:], host.children[idx:])
	host.children[idx] = newChild
}

// Remove detaches n from its parent. It is a no-op if n has no parent.
func (n *Node) Remove() {
	if n.Parent == nil {
		return
	}
	host := n.Parent.childContainer()
	for i, c := range host.children {
		if c == n {
			host.children = append(host.children[:i], host.children[i+1:]...)
			break
		}
	}
	n.Parent = nil
}

// ReplaceWith swaps n for replacement at n's current position among its
// parent's children, then detaches n.
func (n *Node) ReplaceWith(replacement *Node) {
	if n.Parent == nil {
		return
	}
	parent := n.Parent
	host := parent.childContainer()
	for i, c := range host.children {
		if c == n {
			replacement.Parent = parent
			host.children[i] = replacement
			n.Parent = nil
			return
		}
	}
}

// CloneNode returns a shallow (or, if deep, recursive) copy of n with no
// parent. Template shadow content is cloned alongside the element per the
// deep-clone requirement of selected-content population (see the tree
// builder's final pass).
func (n *Node) CloneNode(deep bool) *Node {
	c := &Node{
		id:          nextID(),
		Kind:        n.Kind,
		Name:        n.Name,
		Namespace:   n.Namespace,
		Data:        n.Data,
		DoctypeName: n.DoctypeName,
		PublicID:    n.PublicID,
		SystemID:    n.SystemID,
	}
	if n.Kind == ElementKind {
		c.Attrs = n.Attrs.clone()
	}
	if n.Pos != nil {
		p := *n.Pos
		c.Pos = &p
	}
	if n.IsTemplate() {
		if n.templateContent != nil {
			c.templateContent = n.templateContent.CloneNode(true)
		}
		return c
	}
	if deep {
		for _, child := range n.Children() {
			c.AppendChild(child.CloneNode(true))
		}
	}
	return c
}

var idCounter int

func nextID() int {
	idCounter++
	return idCounter
}

// NewDocument returns a fresh, empty document root.
func NewDocument() *Node {
	return &Node{Kind: DocumentKind, id: nextID()}
}

// NewDocumentFragment returns a fresh, empty fragment root.
func NewDocumentFragment() *Node {
	return &Node{Kind: DocumentFragmentKind, id: nextID()}
}

// NewElement returns an element node with a lower-cased name.
func NewElement(name string, ns Namespace) *Node {
	return &Node{Kind: ElementKind, id: nextID(), Name: lowerASCII(name), Namespace: ns}
}

// NewText returns a text node. Callers must not construct empty text nodes;
// per the "no text node is empty" invariant, producing one is a bug in the
// caller.
func NewText(data string) *Node {
	return &Node{Kind: TextKind, id: nextID(), Data: data}
}

// NewComment returns a comment node.
func NewComment(data string) *Node {
	return &Node{Kind: CommentKind, id: nextID(), Data: data}
}

// NewDoctype returns a doctype node.
func NewDoctype(name, publicID, systemID string) *Node {
	return &Node{Kind: DoctypeKind, id: nextID(), DoctypeName: name, PublicID: publicID, SystemID: systemID}
}

func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 0x20
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
