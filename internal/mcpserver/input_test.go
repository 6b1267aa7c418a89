package mcpserver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExactlyOneInput(t *testing.T) {
	tests := []struct {
		name  string
		input wsdlInput
	}{
		{"none", wsdlInput{}},
		{"file and content", wsdlInput{File: "a.wsdl", Content: testWSDL}},
		{"file and url", wsdlInput{File: "a.wsdl", URL: "http://example.com/a.wsdl"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.resolve()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exactly one of file, url, or content")
		})
	}
}

func TestResolve_Content(t *testing.T) {
	doc, err := wsdlInput{Content: testWSDL}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "UserService", doc.ServiceName())
}

func TestResolve_ContentCached(t *testing.T) {
	docCache.reset()
	t.Cleanup(docCache.reset)

	in := wsdlInput{Content: testWSDL}
	_, err := in.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docCache.size())

	// Second resolve hits the cache; each call still gets its own Document.
	first, err := in.resolve()
	require.NoError(t, err)
	second, err := in.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docCache.size())
	assert.NotSame(t, first, second)
	assert.Same(t, first.Result(), second.Result())
}

func TestResolve_InlineSizeLimit(t *testing.T) {
	oversized := strings.Repeat("x", int(cfg.MaxInlineSize)+1)
	_, err := wsdlInput{Content: oversized}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestMakeCacheKey(t *testing.T) {
	contentKey := makeCacheKey(wsdlInput{Content: testWSDL}, nil)
	assert.True(t, strings.HasPrefix(contentKey, "content:"))
	// Same content hashes to the same key.
	assert.Equal(t, contentKey, makeCacheKey(wsdlInput{Content: testWSDL}, nil))

	urlKey := makeCacheKey(wsdlInput{URL: "http://example.com/a.wsdl"}, nil)
	assert.Equal(t, "url:http://example.com/a.wsdl", urlKey)

	// Missing files are not cacheable.
	assert.Empty(t, makeCacheKey(wsdlInput{File: "no/such/file.wsdl"}, nil))
}

func TestCacheEviction(t *testing.T) {
	docCache.reset()
	t.Cleanup(docCache.reset)

	// Fill past capacity; the oldest entry gets evicted.
	for i := 0; i < docCache.maxSize+1; i++ {
		docCache.putWithTTL(string(rune('a'+i)), nil, cfg.CacheContentTTL)
	}
	assert.Equal(t, docCache.maxSize, docCache.size())
}
