package tokenizer

import "strings"

// scanDoctype consumes "<!doctype ... >" and parses the optional name,
// PUBLIC identifier pair, or SYSTEM identifier, reporting eof-in-doctype
// if '>' is never found.
func (t *Tokenizer) scanDoctype() Token {
	startPos := t.pos_()
	t.advanceN(len("<!doctype"))
	tok := Token{Kind: Doctype, Pos: startPos}

	t.skipWhitespace()
	tok.DoctypeName = strings.ToLower(t.readUntil(func(b byte) bool {
		return isWhitespace(b) || b == '>'
	}))

	t.skipWhitespace()
	switch {
	case t.matchKeywordFold("PUBLIC"):
		t.skipWhitespace()
		pub := t.readQuotedOrEmpty()
		tok.PublicID = &pub
		t.skipWhitespace()
		if t.atQuote() {
			sys := t.readQuotedOrEmpty()
			tok.SystemID = &sys
		} else {
			empty := ""
			tok.SystemID = &empty
		}
	case t.matchKeywordFold("SYSTEM"):
		t.skipWhitespace()
		sys := t.readQuotedOrEmpty()
		tok.SystemID = &sys
		empty := ""
		tok.PublicID = &empty
	}

	if !t.skipToGT() {
		t.addErr("eof-in-doctype", "unterminated doctype at end of input", startPos)
	}
	return tok
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func (t *Tokenizer) skipWhitespace() {
	for !t.eof() && isWhitespace(t.input[t.pos]) {
		t.advanceRune()
	}
}

func (t *Tokenizer) readUntil(stop func(byte) bool) string {
	start := t.pos
	for !t.eof() && !stop(t.input[t.pos]) {
		t.advanceRune()
	}
	return t.input[start:t.pos]
}

func (t *Tokenizer) matchKeywordFold(kw string) bool {
	if !hasPrefixFold(t.input[t.pos:], kw) {
		return false
	}
	t.advanceN(len(kw))
	return true
}

func (t *Tokenizer) atQuote() bool {
	return !t.eof() && (t.input[t.pos] == '"' || t.input[t.pos] == '\'')
}

// readQuotedOrEmpty reads a single- or double-quoted string, returning its
// contents, or "" if no quote is present at the current position.
func (t *Tokenizer) readQuotedOrEmpty() string {
	if !t.atQuote() {
		return ""
	}
	quote := t.input[t.pos]
	t.advanceRune()
	start := t.pos
	for !t.eof() && t.input[t.pos] != quote {
		t.advanceRune()
	}
	val := t.input[start:t.pos]
	if !t.eof() {
		t.advanceRune() // closing quote
	}
	return val
}

// skipToGT advances past the next '>', returning false if EOF is reached
// first (leaving position at EOF).
func (t *Tokenizer) skipToGT() bool {
	for !t.eof() {
		if t.input[t.pos] == '>' {
			t.advanceRune()
			return true
		}
		t.advanceRune()
	}
	return false
}
