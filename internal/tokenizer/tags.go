package tokenizer

import (
	"strings"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/htmltag"
)

// scanEndTag consumes "</name...>". The caller has already confirmed a
// letter follows "</".
func (t *Tokenizer) scanEndTag() Token {
	startPos := t.pos_()
	t.advanceN(2) // "</"
	name := t.readTagName()
	// anything up to '>' besides the name is ignored for end tags, aside
	// from allowing self-closing-looking markup to slide through.
	t.skipToGT()
	return Token{Kind: EndTag, Name: name, Pos: startPos}
}

func (t *Tokenizer) readTagName() string {
	start := t.pos
	for !t.eof() {
		b := t.input[t.pos]
		if isWhitespace(b) || b == '/' || b == '>' {
			break
		}
		t.advanceRune()
	}
	return strings.ToLower(t.input[start:t.pos])
}

// scanStartTag consumes "<name attr=val ...>" (or the self-closing
// "/>" form) and, for elements that switch the tokenizer into raw-text or
// RCDATA scanning, arms that mode for the next call to Next.
func (t *Tokenizer) scanStartTag() Token {
	startPos := t.pos_()
	t.advanceN(1) // "<"
	name := t.readTagName()

	attrs := dom.Attributes{}
	selfClosing := false

	for {
		t.skipWhitespace()
		if t.eof() {
			t.addErr("eof-in-tag", "unterminated start tag at end of input", startPos)
			break
		}
		switch t.input[t.pos] {
		case '>':
			t.advanceRune()
			goto done
		case '/':
			t.advanceRune()
			if !t.eof() && t.input[t.pos] == '>' {
				selfClosing = true
				t.advanceRune()
				goto done
			}
			continue
		}
		t.scanAttribute(&attrs)
	}
done:

	if !selfClosing && htmltag.IsRawTextOrRCData(name) {
		t.inRawText = true
		t.rawTextTag = name
		t.rawTextRCData = htmltag.IsRCData(name)
		t.inScript = name == "script"
	}

	return Token{Kind: StartTag, Name: name, Attrs: attrs, SelfClosing: selfClosing, Pos: startPos}
}

// scanAttribute parses one key[=value] pair and records it in attrs,
// dropping the attribute if its key has already been seen.
func (t *Tokenizer) scanAttribute(attrs *dom.Attributes) {
	keyStart := t.pos
	for !t.eof() {
		b := t.input[t.pos]
		if isWhitespace(b) || b == '=' || b == '/' || b == '>' {
			break
		}
		t.advanceRune()
	}
	key := strings.ToLower(t.input[keyStart:t.pos])
	if key == "" {
		// stray '=' or similar with no key; consume one byte to guarantee
		// forward progress and let the caller's loop continue.
		if !t.eof() {
			t.advanceRune()
		}
		return
	}

	t.skipWhitespace()
	value := ""
	if !t.eof() && t.input[t.pos] == '=' {
		t.advanceRune()
		t.skipWhitespace()
		value = t.readAttributeValue()
	}
	attrs.Set(key, value)
}

func (t *Tokenizer) readAttributeValue() string {
	if t.eof() {
		return ""
	}
	switch t.input[t.pos] {
	case '"', '\'':
		quote := t.input[t.pos]
		t.advanceRune()
		start := t.pos
		for !t.eof() && t.input[t.pos] != quote {
			t.advanceRune()
		}
		raw := t.input[start:t.pos]
		if !t.eof() {
			t.advanceRune()
		}
		return entityDecodeAttr(raw)
	default:
		start := t.pos
		for !t.eof() {
			b := t.input[t.pos]
			if isWhitespace(b) || b == '>' {
				break
			}
			t.advanceRune()
		}
		return entityDecodeAttr(t.input[start:t.pos])
	}
}
