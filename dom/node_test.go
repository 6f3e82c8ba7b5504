package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneNodeDeepCopiesOrdinaryChildren(t *testing.T) {
	p := NewElement("p", HTML)
	p.AppendChild(NewText("hi"))

	clone := p.CloneNode(true)
	require.Len(t, clone.Children(), 1)
	assert.Equal(t, "hi", clone.Children()[0].Data)
	assert.Nil(t, clone.Parent)

	// The clone is independent of the original.
	clone.Children()[0].Data = "bye"
	assert.Equal(t, "hi", p.Children()[0].Data)
}

func TestCloneNodeShallowOmitsChildren(t *testing.T) {
	p := NewElement("p", HTML)
	p.AppendChild(NewText("hi"))

	clone := p.CloneNode(false)
	assert.Empty(t, clone.Children())
}

// A deep clone of <template> must not double up its shadow content: the
// template-specific branch already clones templateContent, so the
// generic deep-clone loop (which also walks Children(), redirected
// through templateContent for templates) must not run a second time.
func TestCloneNodeTemplateDoesNotDoubleCloneShadowContent(t *testing.T) {
	tmpl := NewElement("template", HTML)
	tmpl.AppendChild(NewText("hi"))

	clone := tmpl.CloneNode(true)
	require.True(t, clone.IsTemplate())
	require.Len(t, clone.Children(), 1)
	assert.Equal(t, "hi", clone.Children()[0].Data)

	// The clone's shadow content is independent of the original's.
	clone.Children()[0].Data = "bye"
	assert.Equal(t, "hi", tmpl.Children()[0].Data)
}

func TestCloneNodeTemplateWithNoContentStaysEmpty(t *testing.T) {
	tmpl := NewElement("template", HTML)
	clone := tmpl.CloneNode(true)
	assert.True(t, clone.IsTemplate())
	assert.Empty(t, clone.Children())
}
