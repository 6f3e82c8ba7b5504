package serialize

import (
	"testing"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/perr"
	"github.com/corvidlabs/html5/internal/tokenizer"
	"github.com/corvidlabs/html5/internal/treebuilder"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *dom.Node {
	t.Helper()
	errs := perr.NewLog(false)
	tok := tokenizer.New(input, errs)
	b := treebuilder.New(treebuilder.Options{}, errs)
	return b.Build(tok)
}

func TestToHTMLRoundTripsSimpleDocument(t *testing.T) {
	root := parse(t, "<!doctype html><html><body><p>hi &amp; bye</p></body></html>")
	out := ToHTML(root)
	assert.Contains(t, out, "<p>hi &amp; bye</p>")
}

func TestToHTMLEscapesAngleBracketsInText(t *testing.T) {
	root := parse(t, "<p>a &lt; b</p>")
	out := ToHTML(root)
	assert.Contains(t, out, "a &lt; b")
}

func TestToHTMLLeavesScriptContentRaw(t *testing.T) {
	root := parse(t, "<script>if (a < b) {}</script>")
	out := ToHTML(root)
	assert.Contains(t, out, "if (a < b) {}")
}

func TestToTestFormatRendersDoctypeAndElements(t *testing.T) {
	root := parse(t, "<!doctype html><p>hi</p>")
	out := ToTestFormat(root)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<html>")
	assert.Contains(t, out, "<p>")
	assert.Contains(t, out, "\"hi\"")
}

func TestToTestFormatUsesSVGCamelCaseAndNamespacePrefix(t *testing.T) {
	root := parse(t, "<svg><foreignObject><div>x</div></foreignObject></svg>")
	out := ToTestFormat(root)
	assert.Contains(t, out, "<svg foreignObject>")
	assert.Contains(t, out, "<div>")
}

func TestToTestFormatSortsAttributesByKey(t *testing.T) {
	root := parse(t, `<div zeta="1" alpha="2"></div>`)
	out := ToTestFormat(root)
	alphaIdx := indexOf(out, `alpha="2"`)
	zetaIdx := indexOf(out, `zeta="1"`)
	assert.True(t, alphaIdx < zetaIdx)
}

// nodeSnapshot is a structural, comparable view of a dom.Node: exported
// fields only, no Parent back-references (which would make cmp.Diff walk
// a cycle) and no node identity or source-position noise.
type nodeSnapshot struct {
	Kind        dom.Kind
	Name        string
	Namespace   dom.Namespace
	Data        string
	DoctypeName string
	PublicID    string
	SystemID    string
	Attrs       map[string]string
	Children    []nodeSnapshot
}

func snapshot(n *dom.Node) nodeSnapshot {
	attrs := map[string]string{}
	for _, name := range n.Attrs.Names() {
		v, _ := n.Attrs.Get(name)
		attrs[name] = v
	}
	children := make([]nodeSnapshot, 0, len(n.Children()))
	for _, c := range n.Children() {
		children = append(children, snapshot(c))
	}
	return nodeSnapshot{
		Kind:        n.Kind,
		Name:        n.Name,
		Namespace:   n.Namespace,
		Data:        n.Data,
		DoctypeName: n.DoctypeName,
		PublicID:    n.PublicID,
		SystemID:    n.SystemID,
		Attrs:       attrs,
		Children:    children,
	}
}

// TestParseToHTMLRoundTripIsStructurallyStable exercises spec.md §8's
// round-trip law: for a well-formed, HTML-namespace-only document D,
// parse(toHTML(parse(D))) is structurally equal to parse(D).
func TestParseToHTMLRoundTripIsStructurallyStable(t *testing.T) {
	inputs := []string{
		`<!doctype html><html lang="en"><head><title>T</title></head><body><p class="x">hi &amp; bye</p></body></html>`,
		`<!doctype html><ul><li>a</li><li>b</li></ul>`,
		`<!doctype html><table><tr><td>1</td><td>2</td></tr></table>`,
	}
	for _, input := range inputs {
		first := parse(t, input)
		again := parse(t, ToHTML(first))
		require.Equal(t, "", cmp.Diff(snapshot(first), snapshot(again)))
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
