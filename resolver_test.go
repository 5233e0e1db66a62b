package xml

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventsOf(t *testing.T, input string, opts ...ParserOption) []Event {
	t.Helper()
	res := NewResolver(NewTokenizer([]byte(input), opts...), opts...)
	var evs []Event
	for {
		ev, err := res.Next()
		if err == io.EOF {
			return evs
		}
		require.NoError(t, err)
		evs = append(evs, ev)
		if _, ok := ev.(EndDocumentEvent); ok {
			return evs
		}
	}
}

func TestResolverBracketsBeginEndDocument(t *testing.T) {
	evs := eventsOf(t, `<p/>`)
	require.Len(t, evs, 4)
	assert.IsType(t, BeginDocumentEvent{}, evs[0])
	assert.IsType(t, BeginElementEvent{}, evs[1])
	assert.IsType(t, EndElementEvent{}, evs[2])
	assert.IsType(t, EndDocumentEvent{}, evs[3])
}

func TestResolverXMLDeclarationAttrs(t *testing.T) {
	evs := eventsOf(t, `<?xml version="1.0" encoding="UTF-8"?><p/>`)
	decl, ok := evs[0].(BeginDocumentEvent)
	require.True(t, ok)
	version, ok := decl.Attrs.Get(QName{Local: "version"})
	require.True(t, ok)
	assert.Equal(t, "1.0", flattenFragments(version))
	encoding, ok := decl.Attrs.Get(QName{Local: "encoding"})
	require.True(t, ok)
	assert.Equal(t, "UTF-8", flattenFragments(encoding))
}

func TestResolverDefaultNamespaceInheritance(t *testing.T) {
	evs := eventsOf(t, `<a xmlns="u"><b/></a>`)

	a, ok := evs[1].(BeginElementEvent)
	require.True(t, ok)
	require.NotNil(t, a.Name.URI)
	assert.Equal(t, "u", *a.Name.URI)
	assert.Equal(t, "a", a.Name.Local)
	// the xmlns attribute itself is not surfaced as an ordinary attribute
	assert.Empty(t, a.Attrs)

	b, ok := evs[2].(BeginElementEvent)
	require.True(t, ok)
	require.NotNil(t, b.Name.URI)
	assert.Equal(t, "u", *b.Name.URI)

	bEnd, ok := evs[3].(EndElementEvent)
	require.True(t, ok)
	require.NotNil(t, bEnd.Name.URI)
	assert.Equal(t, "u", *bEnd.Name.URI)

	aEnd, ok := evs[4].(EndElementEvent)
	require.True(t, ok)
	require.NotNil(t, aEnd.Name.URI)
	assert.Equal(t, "u", *aEnd.Name.URI)
}

func TestResolverPrefixedElementAndUnprefixedAttrNeverDefault(t *testing.T) {
	evs := eventsOf(t, `<r xmlns="d" xmlns:x="u"><x:c k="v"/></r>`)

	c, ok := evs[2].(BeginElementEvent)
	require.True(t, ok)
	require.NotNil(t, c.Name.URI)
	assert.Equal(t, "u", *c.Name.URI)
	assert.Equal(t, "c", c.Name.Local)

	for _, attr := range c.Attrs {
		if attr.Name.Local == "k" {
			assert.Nil(t, attr.Name.URI, "unprefixed attribute must not inherit the default namespace")
		}
	}
}

func TestResolverXMLPrefixFixedURI(t *testing.T) {
	evs := eventsOf(t, `<p xml:lang="en"/>`)
	p, ok := evs[1].(BeginElementEvent)
	require.True(t, ok)
	var found bool
	for _, attr := range p.Attrs {
		if attr.Name.Local == "lang" {
			found = true
			require.NotNil(t, attr.Name.URI)
			assert.Equal(t, xmlNamespaceURI, *attr.Name.URI)
		}
	}
	assert.True(t, found)
}

func TestResolverUnknownPrefixRetainedNotError(t *testing.T) {
	evs := eventsOf(t, `<y:p/>`)
	p, ok := evs[1].(BeginElementEvent)
	require.True(t, ok)
	assert.Nil(t, p.Name.URI)
	require.NotNil(t, p.Name.Prefix)
	assert.Equal(t, "y", *p.Name.Prefix)
}

func TestResolverEndTagResolvedAgainstItsOwnScope(t *testing.T) {
	evs := eventsOf(t, `<a xmlns="u"><b xmlns="v"/></a>`)
	b, ok := evs[2].(BeginElementEvent)
	require.True(t, ok)
	require.NotNil(t, b.Name.URI)
	assert.Equal(t, "v", *b.Name.URI)

	bEnd, ok := evs[3].(EndElementEvent)
	require.True(t, ok)
	require.NotNil(t, bEnd.Name.URI)
	assert.Equal(t, "v", *bEnd.Name.URI, "end tag must resolve against the scope it closes, not the parent's")
}

func TestResolverMaxDepth(t *testing.T) {
	res := NewResolver(NewTokenizer([]byte(`<a><b><c/></b></a>`)), MaxDepth(1))
	_, err := res.Next() // BeginDocument
	require.NoError(t, err)
	_, err = res.Next() // <a>
	require.NoError(t, err)
	_, err = res.Next() // <b> exceeds depth
	assert.Error(t, err)
}
