package tokenizer

import "strings"

// scanRawText consumes content in raw-text or RCDATA mode: everything up
// to the matching "</tagName" at a tag boundary becomes a single text
// token; entities are decoded only in RCDATA (textarea, title).
func (t *Tokenizer) scanRawText() (Token, bool) {
	start := t.pos
	startPos := t.pos_()
	for !t.eof() {
		if t.atRawTextEndTag() {
			if t.pos > start {
				return t.emitText(start, t.pos, startPos, t.rawTextRCData), true
			}
			t.leaveRawText()
			return t.scanEndTag(), true
		}
		t.advanceRune()
	}
	if t.pos > start {
		tok := t.emitText(start, t.pos, startPos, t.rawTextRCData)
		t.addErr("expected-closing-tag-but-got-eof",
			"unterminated raw-text element </"+t.rawTextTag+"> at end of input", tok.Pos)
		t.leaveRawText()
		return tok, true
	}
	eofPos := t.pos_()
	t.addErr("expected-closing-tag-but-got-eof",
		"unterminated raw-text element </"+t.rawTextTag+"> at end of input", eofPos)
	t.leaveRawText()
	return Token{}, false
}

func (t *Tokenizer) leaveRawText() {
	t.inRawText = false
	t.rawTextTag = ""
	t.rawTextRCData = false
	t.inScript = false
}

// atRawTextEndTag reports whether t.pos begins "</tagName" followed by a
// tag boundary (">",  "/", whitespace, or EOF), matched case-insensitively.
func (t *Tokenizer) atRawTextEndTag() bool {
	return t.matchEndTagBoundary(t.rawTextTag)
}

func (t *Tokenizer) matchEndTagBoundary(name string) bool {
	rest := t.input[t.pos:]
	if !strings.HasPrefix(rest, "</") {
		return false
	}
	rest = rest[2:]
	if !hasPrefixFold(rest, name) {
		return false
	}
	rest = rest[len(name):]
	if rest == "" {
		return true
	}
	b := rest[0]
	return isWhitespace(b) || b == '>' || b == '/'
}
