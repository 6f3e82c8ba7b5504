// Package tokenizer implements the single-pass scanner that turns an HTML
// input string into a lazy sequence of tokens. It is pull-based: callers
// call Next repeatedly until it reports exhaustion, never handed a
// callback or a channel, so a parse that only needs a prefix of the
// document never pays for the rest.
package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/corvidlabs/html5/internal/entity"
	"github.com/corvidlabs/html5/internal/perr"

	"github.com/sirupsen/logrus"
)

// Tokenizer scans input one token at a time. The zero value is not usable;
// construct with New.
type Tokenizer struct {
	input string
	pos   int
	line  int
	col   int

	errs *perr.Log
	log  *logrus.Entry

	// Raw-text / RCDATA mode, entered automatically after emitting a start
	// tag for an element htmltag.IsRawTextOrRCData names.
	inRawText     bool
	rawTextTag    string
	rawTextRCData bool // true for textarea/title: decode entities, don't track script escapes
	inScript      bool
}

// New returns a Tokenizer over input. errs may be nil, in which case
// tokenizer errors are silently dropped (the collectErrors=false case).
func New(input string, errs *perr.Log) *Tokenizer {
	return &Tokenizer{
		input: input,
		line:  1,
		col:   1,
		errs:  errs,
		log:   logrus.WithField("component", "tokenizer"),
	}
}

func (t *Tokenizer) pos_() Position {
	return Position{Offset: t.pos, Line: t.line, Column: t.col}
}

func (t *Tokenizer) addErr(code, message string, pos Position) {
	t.errs.Add(perr.Tokenizer, code, message, pos.Line, pos.Column)
}

// advanceRune consumes and returns the rune at t.pos, advancing position
// and line/column bookkeeping. It must not be called at EOF.
func (t *Tokenizer) advanceRune() rune {
	r, size := utf8.DecodeRuneInString(t.input[t.pos:])
	t.pos += size
	if r == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return r
}

func (t *Tokenizer) eof() bool { return t.pos >= len(t.input) }

// Next returns the next token and true, or the zero Token and false once
// the input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	if t.inRawText {
		t.log.WithFields(logrus.Fields{"tag": t.rawTextTag, "script": t.inScript}).Debug("scanning raw-text mode")
		if t.inScript {
			return t.scanScriptData()
		}
		return t.scanRawText()
	}
	return t.scanNormal()
}

func (t *Tokenizer) scanNormal() (Token, bool) {
	start := t.pos
	startPos := t.pos_()
	for !t.eof() {
		if t.input[t.pos] == '<' {
			if kind, ok := t.peekMarkup(); ok {
				if t.pos > start {
					return t.emitText(start, t.pos, startPos, true), true
				}
				return t.dispatchMarkup(kind), true
			}
		}
		t.advanceRune()
	}
	if t.pos > start {
		return t.emitText(start, t.pos, startPos, true), true
	}
	return Token{}, false
}

type markupKind int

const (
	markupComment markupKind = iota
	markupDoctype
	markupCDATA
	markupBogusBang
	markupBogusQuestion
	markupEndTag
	markupStartTag
)

// peekMarkup inspects the '<' at t.pos without consuming anything and
// reports what kind of markup it introduces, or ok=false if it is not
// recognized (and so is literal text).
func (t *Tokenizer) peekMarkup() (markupKind, bool) {
	rest := t.input[t.pos:]
	switch {
	case strings.HasPrefix(rest, "<!--"):
		return markupComment, true
	case len(rest) >= 2 && hasPrefixFold(rest, "<!doctype"):
		return markupDoctype, true
	case strings.HasPrefix(rest, "<![CDATA["):
		return markupCDATA, true
	case strings.HasPrefix(rest, "<!"):
		return markupBogusBang, true
	case strings.HasPrefix(rest, "<?"):
		return markupBogusQuestion, true
	case strings.HasPrefix(rest, "</"):
		if len(rest) >= 3 && isASCIILetter(rest[2]) {
			return markupEndTag, true
		}
		return markupBogusBang, true // "</" not followed by a letter: bogus comment
	case len(rest) >= 2 && isASCIILetter(rest[1]):
		return markupStartTag, true
	default:
		return 0, false
	}
}

var markupKindNames = map[markupKind]string{
	markupComment:       "comment",
	markupDoctype:       "doctype",
	markupCDATA:         "cdata",
	markupBogusBang:     "bogus-bang",
	markupBogusQuestion: "bogus-question",
	markupEndTag:        "end-tag",
	markupStartTag:      "start-tag",
}

func (t *Tokenizer) dispatchMarkup(kind markupKind) Token {
	t.log.WithFields(logrus.Fields{"kind": markupKindNames[kind], "pos": t.pos}).Debug("dispatching markup")
	switch kind {
	case markupComment:
		return t.scanComment()
	case markupDoctype:
		return t.scanDoctype()
	case markupCDATA:
		return t.scanCDATA()
	case markupBogusBang:
		return t.scanBogusComment(2) // skip "<!"
	case markupBogusQuestion:
		return t.scanBogusQuestionComment()
	case markupEndTag:
		return t.scanEndTag()
	case markupStartTag:
		return t.scanStartTag()
	}
	panic("tokenizer: unreachable markup kind")
}

func (t *Tokenizer) emitText(start, end int, pos Position, decode bool) Token {
	raw := t.input[start:end]
	raw = normalizeNewlines(raw)
	if decode {
		raw = entity.Decode(raw, false)
	}
	return Token{Kind: Text, Data: raw, Pos: pos}
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

func entityDecodeAttr(s string) string {
	return entity.Decode(normalizeNewlines(s), true)
}
