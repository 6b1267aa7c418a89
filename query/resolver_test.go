package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveType_QualifiedDisambiguation(t *testing.T) {
	doc := testDocument(t)

	one := doc.resolveType("ns1:Address", "")
	require.NotNil(t, one)
	assert.Equal(t, nsOne, one.Namespace)
	assert.Contains(t, one.Fields, "street")

	two := doc.resolveType("ns2:Address", "")
	require.NotNil(t, two)
	assert.Equal(t, nsTwo, two.Namespace)
	assert.Contains(t, two.Fields, "postcode")
	assert.NotContains(t, two.Fields, "street")
}

func TestResolveType_QualifiedNeverFallsThrough(t *testing.T) {
	doc := testDocument(t)

	// ns1 declares SharedType but not Shared; a qualified lookup for
	// ns1:Shared must miss rather than pick up the suffix convention.
	assert.Nil(t, doc.resolveType("ns1:Shared", ""))

	// Unknown prefix misses outright.
	assert.Nil(t, doc.resolveType("nope:Address", ""))
}

func TestResolveType_SuffixFallback(t *testing.T) {
	doc := testDocument(t)

	rec := doc.resolveType("User", "")
	require.NotNil(t, rec)
	assert.Equal(t, "UserType", rec.Name)
	assert.Contains(t, rec.Fields, "login")
}

func TestResolveType_LiteralBeatsSuffix(t *testing.T) {
	doc := testDocument(t)

	// Both Foo and FooType are declared; the literal declaration wins even
	// though the suffix pass still collected FooType as a candidate.
	rec := doc.resolveType("Foo", "")
	require.NotNil(t, rec)
	assert.Equal(t, "Foo", rec.Name)
}

func TestResolveType_ContextNamespacePrecedence(t *testing.T) {
	doc := testDocument(t)

	// Shared is declared literally in nsTwo only, while nsOne carries
	// SharedType. A context of nsOne holds no literal match, so the
	// literal match in the other namespace still beats the suffix match
	// that does live in the context namespace.
	rec := doc.resolveType("Shared", nsOne)
	require.NotNil(t, rec)
	assert.Equal(t, nsTwo, rec.Namespace)
	assert.Equal(t, "Shared", rec.Name)

	// With context nsTwo the literal match is also the context match.
	rec = doc.resolveType("Shared", nsTwo)
	require.NotNil(t, rec)
	assert.Equal(t, nsTwo, rec.Namespace)
}

func TestResolveType_ContextBeatsOtherNamespaces(t *testing.T) {
	doc := testDocument(t)

	rec := doc.resolveType("Address", nsTwo)
	require.NotNil(t, rec)
	assert.Equal(t, nsTwo, rec.Namespace)

	rec = doc.resolveType("Address", nsOne)
	require.NotNil(t, rec)
	assert.Equal(t, nsOne, rec.Namespace)
}

func TestResolveType_TieBreakIsStable(t *testing.T) {
	doc := testDocument(t)

	// Without a context namespace, both declarations of Address carry the
	// same priority and the first namespace in scan order wins. The index
	// scan follows schema declaration order, so nsOne is first.
	for range 5 {
		rec := doc.resolveType("Address", "")
		require.NotNil(t, rec)
		assert.Equal(t, nsOne, rec.Namespace)
	}
}

func TestResolveType_Memoization(t *testing.T) {
	doc := testDocument(t)

	first := doc.resolveType("ns1:Address", "")
	second := doc.resolveType("ns1:Address", "")
	assert.Same(t, first, second)

	// Misses are memoized too: the second lookup is a cache hit, observable
	// as a stable cache size.
	assert.Nil(t, doc.resolveType("DoesNotExist", ""))
	entries := len(doc.resolutions)
	assert.Nil(t, doc.resolveType("DoesNotExist", ""))
	assert.Equal(t, entries, len(doc.resolutions))
}

func TestResolveType_DistinctContextsCachedSeparately(t *testing.T) {
	doc := testDocument(t)

	withContext := doc.resolveType("Address", nsTwo)
	withoutContext := doc.resolveType("Address", "")
	require.NotNil(t, withContext)
	require.NotNil(t, withoutContext)
	assert.NotSame(t, withContext, withoutContext)
	assert.Equal(t, nsTwo, withContext.Namespace)
	assert.Equal(t, nsOne, withoutContext.Namespace)
}

func TestSplitPrefix(t *testing.T) {
	prefix, local, qualified := splitPrefix("tns:Address")
	if !qualified || prefix != "tns" || local != "Address" {
		t.Errorf("splitPrefix(tns:Address) = %q, %q, %v", prefix, local, qualified)
	}

	prefix, local, qualified = splitPrefix("Address")
	if qualified || prefix != "" || local != "Address" {
		t.Errorf("splitPrefix(Address) = %q, %q, %v", prefix, local, qualified)
	}
}
