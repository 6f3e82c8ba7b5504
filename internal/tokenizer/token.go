package tokenizer

import "github.com/corvidlabs/html5/dom"

// Kind identifies which of the five token variants a Token is.
type Kind uint8

const (
	StartTag Kind = iota
	EndTag
	Text
	Comment
	Doctype
)

func (k Kind) String() string {
	switch k {
	case StartTag:
		return "start-tag"
	case EndTag:
		return "end-tag"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case Doctype:
		return "doctype"
	}
	return "unknown"
}

// Position is the (offset, line, column) origin of a token in the original
// input. Offset is a byte index from the start of the document; Line and
// Column are 1-based, with Column counted in runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Token is the closed set of values the tokenizer emits. Only the fields
// relevant to Kind are meaningful.
type Token struct {
	Kind Kind
	Pos  Position

	// StartTag / EndTag.
	Name        string
	Attrs       dom.Attributes
	SelfClosing bool

	// Text / Comment.
	Data string

	// Doctype. PublicID and SystemID are nil when absent (as opposed to
	// present-but-empty). The public Stream events keep that distinction;
	// the tree builder stores an absent identifier as an empty string.
	DoctypeName string
	PublicID    *string
	SystemID    *string
}
