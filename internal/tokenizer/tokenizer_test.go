package tokenizer

import (
	"testing"

	"github.com/corvidlabs/html5/internal/perr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, input string) ([]Token, *perr.Log) {
	t.Helper()
	log := perr.NewLog(true)
	tok := New(input, log)
	var out []Token
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, tk)
	}
	return out, log
}

func TestSimpleStartAndEndTag(t *testing.T) {
	toks, _ := collectTokens(t, "<p>Hello</p>")
	require.Len(t, toks, 3)
	assert.Equal(t, StartTag, toks[0].Kind)
	assert.Equal(t, "p", toks[0].Name)
	assert.Equal(t, Text, toks[1].Kind)
	assert.Equal(t, "Hello", toks[1].Data)
	assert.Equal(t, EndTag, toks[2].Kind)
	assert.Equal(t, "p", toks[2].Name)
}

func TestAttributesQuotedAndUnquoted(t *testing.T) {
	toks, _ := collectTokens(t, `<a href="x" target=_blank disabled>`)
	require.Len(t, toks, 1)
	tag := toks[0]
	v, ok := tag.Attrs.Get("href")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	v, ok = tag.Attrs.Get("target")
	assert.True(t, ok)
	assert.Equal(t, "_blank", v)
	v, ok = tag.Attrs.Get("disabled")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestDuplicateAttributeDropped(t *testing.T) {
	toks, _ := collectTokens(t, `<a href="first" href="second">`)
	v, _ := toks[0].Attrs.Get("href")
	assert.Equal(t, "first", v)
}

func TestSelfClosingFlag(t *testing.T) {
	toks, _ := collectTokens(t, `<br/>`)
	require.Len(t, toks, 1)
	assert.True(t, toks[0].SelfClosing)
}

func TestComment(t *testing.T) {
	toks, _ := collectTokens(t, "<!--hi-->")
	require.Len(t, toks, 1)
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, "hi", toks[0].Data)
}

func TestEmptyComment(t *testing.T) {
	toks, _ := collectTokens(t, "<!-->")
	require.Len(t, toks, 1)
	assert.Equal(t, "", toks[0].Data)
}

func TestAbruptEmptyCommentVariant(t *testing.T) {
	toks, _ := collectTokens(t, "<!--->")
	require.Len(t, toks, 1)
	assert.Equal(t, "", toks[0].Data)
}

func TestUnterminatedCommentReportsError(t *testing.T) {
	toks, log := collectTokens(t, "<!--oops")
	require.Len(t, toks, 1)
	assert.Equal(t, "oops", toks[0].Data)
	errs := log.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "eof-in-comment", errs[0].Code)
}

func TestDoctypeSimple(t *testing.T) {
	toks, _ := collectTokens(t, "<!doctype html>")
	require.Len(t, toks, 1)
	assert.Equal(t, Doctype, toks[0].Kind)
	assert.Equal(t, "html", toks[0].DoctypeName)
	assert.Nil(t, toks[0].PublicID)
	assert.Nil(t, toks[0].SystemID)
}

func TestDoctypePublicAndSystem(t *testing.T) {
	toks, _ := collectTokens(t,
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	require.Len(t, toks, 1)
	require.NotNil(t, toks[0].PublicID)
	require.NotNil(t, toks[0].SystemID)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", *toks[0].PublicID)
	assert.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", *toks[0].SystemID)
}

func TestCDATAWrapping(t *testing.T) {
	toks, _ := collectTokens(t, "<![CDATA[hi]]>")
	require.Len(t, toks, 1)
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, "[CDATA[hi]]", toks[0].Data)
}

func TestBogusCommentFromBang(t *testing.T) {
	toks, _ := collectTokens(t, "<!weird>")
	require.Len(t, toks, 1)
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, "weird", toks[0].Data)
}

func TestRawTextElementNotEntityDecoded(t *testing.T) {
	toks, _ := collectTokens(t, "<script>a &amp; b</script>")
	require.Len(t, toks, 3)
	assert.Equal(t, "a &amp; b", toks[1].Data)
}

func TestRCDataElementEntityDecoded(t *testing.T) {
	toks, _ := collectTokens(t, "<title>a &amp; b</title>")
	require.Len(t, toks, 3)
	assert.Equal(t, "a & b", toks[1].Data)
}

func TestTextEntityDecoding(t *testing.T) {
	toks, _ := collectTokens(t, "<p>&amp;&lt;</p>")
	assert.Equal(t, "&<", toks[1].Data)
}

func TestNamedEntityGreedyMatch(t *testing.T) {
	toks, _ := collectTokens(t, "<p>&notin text</p>")
	// The table has "notin;" but neither bare "notin" nor "not", so the
	// greedy walk finds no name here and the text passes through
	// unresolved.
	assert.Equal(t, "&notin text", toks[1].Data)
}

func TestScriptDoubleEscapeIgnoresNestedEndTag(t *testing.T) {
	input := "<script>var x = '<!--<script>a</script>-->';</script>"
	toks, _ := collectTokens(t, input)
	require.Len(t, toks, 3)
	assert.Equal(t, StartTag, toks[0].Kind)
	assert.Equal(t, Text, toks[1].Kind)
	assert.Equal(t, EndTag, toks[2].Kind)
	assert.Equal(t, "script", toks[2].Name)
}

func TestCRLFNormalization(t *testing.T) {
	toks, _ := collectTokens(t, "<p>a\r\nb\rc</p>")
	assert.Equal(t, "a\nb\nc", toks[1].Data)
}

func TestUnterminatedStartTagReportsError(t *testing.T) {
	_, log := collectTokens(t, "<div")
	errs := log.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "eof-in-tag", errs[0].Code)
}
