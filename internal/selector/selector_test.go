package selector

import (
	"testing"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/perr"
	"github.com/corvidlabs/html5/internal/tokenizer"
	"github.com/corvidlabs/html5/internal/treebuilder"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, input string) *dom.Node {
	t.Helper()
	errs := perr.NewLog(false)
	tok := tokenizer.New(input, errs)
	b := treebuilder.New(treebuilder.Options{}, errs)
	return b.Build(tok)
}

func TestQueryByType(t *testing.T) {
	root := parse(t, "<div><p>a</p><p>b</p></div>")
	matches := Query(root, Parse("p"))
	assert.Len(t, matches, 2)
}

func TestQueryByID(t *testing.T) {
	root := parse(t, `<div id="main"><p id="x">a</p></div>`)
	match := QueryOne(root, Parse("#x"))
	assert.NotNil(t, match)
	assert.Equal(t, "p", match.Name)
}

func TestQueryByClass(t *testing.T) {
	root := parse(t, `<p class="card highlighted">a</p><p class="card">b</p>`)
	matches := Query(root, Parse(".highlighted"))
	assert.Len(t, matches, 1)
}

func TestQueryDescendantCombinator(t *testing.T) {
	root := parse(t, `<div class="card"><span>a</span><p><span>b</span></p></div>`)
	matches := Query(root, Parse("div.card span"))
	assert.Len(t, matches, 2)
}

func TestQueryOneReturnsFirstInDocumentOrder(t *testing.T) {
	root := parse(t, `<ul><li id="first">1</li><li id="second">2</li></ul>`)
	match := QueryOne(root, Parse("li"))
	assert.NotNil(t, match)
	id, _ := match.Attrs.Get("id")
	assert.Equal(t, "first", id)
}

func TestQueryNoMatches(t *testing.T) {
	root := parse(t, `<div></div>`)
	matches := Query(root, Parse("span"))
	assert.Empty(t, matches)
}
