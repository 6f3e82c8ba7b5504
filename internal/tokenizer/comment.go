package tokenizer

import "strings"

// scanComment consumes "<!--...-->" (or "...--!>"), reporting eof-in-comment
// if the input ends first. "<!-->" and "<!--->" are both treated as the
// empty comment, matching the tokenizer's early-terminator allowance.
func (t *Tokenizer) scanComment() Token {
	startPos := t.pos_()
	t.pos += len("<!--")
	t.col += len("<!--")
	bodyStart := t.pos

	rest := t.input[t.pos:]
	if strings.HasPrefix(rest, "->") {
		t.advanceN(2)
		return Token{Kind: Comment, Data: "", Pos: startPos}
	}
	if strings.HasPrefix(rest, ">") {
		t.advanceN(1)
		return Token{Kind: Comment, Data: "", Pos: startPos}
	}

	for !t.eof() {
		rest = t.input[t.pos:]
		if strings.HasPrefix(rest, "--!>") {
			data := t.input[bodyStart:t.pos]
			t.advanceN(4)
			return Token{Kind: Comment, Data: data, Pos: startPos}
		}
		if strings.HasPrefix(rest, "-->") {
			data := t.input[bodyStart:t.pos]
			t.advanceN(3)
			return Token{Kind: Comment, Data: data, Pos: startPos}
		}
		t.advanceRune()
	}

	data := t.input[bodyStart:t.pos]
	t.addErr("eof-in-comment", "unterminated comment at end of input", startPos)
	return Token{Kind: Comment, Data: data, Pos: startPos}
}

// scanBogusComment consumes everything up to the next '>' (or EOF) as
// comment data, starting skip bytes past the current '<'. NUL bytes are
// replaced with U+FFFD.
func (t *Tokenizer) scanBogusComment(skip int) Token {
	startPos := t.pos_()
	t.advanceN(skip)
	bodyStart := t.pos
	for !t.eof() {
		if t.input[t.pos] == '>' {
			data := replaceNUL(t.input[bodyStart:t.pos])
			t.advanceRune()
			return Token{Kind: Comment, Data: data, Pos: startPos}
		}
		t.advanceRune()
	}
	data := replaceNUL(t.input[bodyStart:t.pos])
	return Token{Kind: Comment, Data: data, Pos: startPos}
}

// scanBogusQuestionComment handles "<?...>", whose comment payload begins
// with the '?' itself (the character after '<' is kept, not consumed as a
// delimiter).
func (t *Tokenizer) scanBogusQuestionComment() Token {
	startPos := t.pos_()
	t.advanceN(1) // just "<"; leave "?" as the first body byte
	bodyStart := t.pos
	for !t.eof() {
		if t.input[t.pos] == '>' {
			data := replaceNUL(t.input[bodyStart:t.pos])
			t.advanceRune()
			return Token{Kind: Comment, Data: data, Pos: startPos}
		}
		t.advanceRune()
	}
	data := replaceNUL(t.input[bodyStart:t.pos])
	return Token{Kind: Comment, Data: data, Pos: startPos}
}

// scanCDATA consumes "<![CDATA[...]]>" and wraps the payload so the tree
// builder can recognize it and decide, based on whether foreign content is
// open, to emit text instead of a bogus comment.
func (t *Tokenizer) scanCDATA() Token {
	startPos := t.pos_()
	t.advanceN(len("<![CDATA["))
	bodyStart := t.pos
	for !t.eof() {
		if strings.HasPrefix(t.input[t.pos:], "]]>") {
			data := t.input[bodyStart:t.pos]
			t.advanceN(3)
			return Token{Kind: Comment, Data: "[CDATA[" + data + "]]", Pos: startPos}
		}
		t.advanceRune()
	}
	data := t.input[bodyStart:t.pos]
	return Token{Kind: Comment, Data: "[CDATA[" + data + "]]", Pos: startPos}
}

func (t *Tokenizer) advanceN(n int) {
	for i := 0; i < n && !t.eof(); i++ {
		t.advanceRune()
	}
}

func replaceNUL(s string) string {
	if !strings.ContainsRune(s, 0) {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "�")
}
