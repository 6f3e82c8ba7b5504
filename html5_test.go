package html5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentProducesScaffolding(t *testing.T) {
	p, err := Parse("<p>hi</p>", Options{})
	require.NoError(t, err)
	html := p.QueryOne("html")
	require.NotNil(t, html)
	assert.NotNil(t, p.QueryOne("head"))
	assert.NotNil(t, p.QueryOne("body"))
}

func TestParseFragmentHasNoScaffolding(t *testing.T) {
	p, err := ParseFragment("<li>one</li><li>two</li>", Options{
		FragmentContext: FragmentContext{TagName: "ul"},
	})
	require.NoError(t, err)
	assert.Nil(t, p.QueryOne("html"))
	assert.Len(t, p.Query("li"), 2)
}

func TestParseCollectsErrorsWhenRequested(t *testing.T) {
	p, err := Parse("<!--unterminated", Options{CollectErrors: true})
	require.NoError(t, err)
	require.NotEmpty(t, p.Errors)
	assert.Equal(t, "eof-in-comment", p.Errors[0].Code)
}

func TestParseDropsErrorsByDefault(t *testing.T) {
	p, err := Parse("<!--unterminated", Options{})
	require.NoError(t, err)
	assert.Empty(t, p.Errors)
}

func TestParseStrictModeFailsOnFirstError(t *testing.T) {
	_, err := Parse("<!--unterminated", Options{Strict: true})
	require.Error(t, err)
}

func TestOptionsRejectsConflictingSanitizeSafe(t *testing.T) {
	yes, no := true, false
	_, err := Parse("<p>x</p>", Options{Sanitize: &yes, Safe: &no})
	require.Error(t, err)
}

func TestToHTMLRoundTrip(t *testing.T) {
	p, err := Parse("<p>a &amp; b</p>", Options{})
	require.NoError(t, err)
	assert.Contains(t, p.ToHTML(), "a &amp; b")
}

func TestToText(t *testing.T) {
	p, err := Parse("<p>hello <b>world</b></p>", Options{})
	require.NoError(t, err)
	assert.Equal(t, "hello world", p.ToText())
}

func TestStreamCoalescesAdjacentText(t *testing.T) {
	events := Stream("<p>a&amp;b</p>", Options{})
	var texts []string
	for _, e := range events {
		if e.Type == EventText {
			texts = append(texts, e.Text)
		}
	}
	assert.Equal(t, []string{"a&b"}, texts)
}

func TestStreamEmitsSyntheticEndForSelfClosing(t *testing.T) {
	events := Stream(`<br/>`, Options{})
	require.Len(t, events, 2)
	assert.Equal(t, EventStart, events[0].Type)
	assert.Equal(t, EventEnd, events[1].Type)
	assert.Equal(t, "br", events[1].Tag)
}

func TestStreamEmitsDoctype(t *testing.T) {
	events := Stream("<!doctype html>", Options{})
	require.Len(t, events, 1)
	assert.Equal(t, EventDoctype, events[0].Type)
	assert.Equal(t, "html", events[0].Tag)
}
