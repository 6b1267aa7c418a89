package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/erraggy/wsdltools/wsdlerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_IncludeCycle(t *testing.T) {
	// cycle-a.xsd and cycle-b.xsd include each other; the loaded set
	// breaks the cycle and both schemas merge exactly once.
	result, err := New().Parse(filepath.Join("testdata", "cycle-main.wsdl"))
	require.NoError(t, err)

	types := result.Definitions.Types["http://example.com/cycle"]
	require.NotNil(t, types)
	assert.Contains(t, types, "FromA")
	assert.Contains(t, types, "FromB")
}

func TestLoader_ChameleonIncludeInheritsNamespace(t *testing.T) {
	// Neither cycle-a.xsd nor cycle-b.xsd declares a targetNamespace; both
	// adopt the including schema's namespace.
	result, err := New().Parse(filepath.Join("testdata", "cycle-main.wsdl"))
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/cycle", result.Definitions.Types["http://example.com/cycle"]["FromA"].Namespace)
}

func TestLoader_PathTraversal(t *testing.T) {
	_, err := New().Parse(filepath.Join("testdata", "sub", "traversal.wsdl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wsdlerrors.ErrPathTraversal))
	assert.True(t, errors.Is(err, wsdlerrors.ErrReference))
}

func TestLoader_MaxFileSize(t *testing.T) {
	p := New()
	p.MaxFileSize = 16 // far below imported-types.xsd
	_, err := p.Parse(filepath.Join("testdata", "import-main.wsdl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wsdlerrors.ErrResourceLimit))
}

func TestLoader_MissingIncludeDegradesToWarning(t *testing.T) {
	// A schemaLocation that points at a nonexistent file inside the base
	// directory is an availability problem, not a security one: the parse
	// succeeds with a warning and the types stay absent.
	data := []byte(`<?xml version="1.0"?>
<definitions targetNamespace="http://example.com/missing"
    xmlns="http://schemas.xmlsoap.org/wsdl/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <types>
    <xsd:schema targetNamespace="http://example.com/missing">
      <xsd:include schemaLocation="does-not-exist.xsd"/>
    </xsd:schema>
  </types>
</definitions>`)

	p := New()
	res, err := p.parseBytesWithBase(data, "testdata", "")
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "does-not-exist.xsd")
}

func TestResolveRelativeURL(t *testing.T) {
	tests := []struct {
		base, location, want string
	}{
		{"http://example.com/svc/service.wsdl", "types.xsd", "http://example.com/svc/types.xsd"},
		{"http://example.com/svc/service.wsdl", "../common/types.xsd", "http://example.com/common/types.xsd"},
		{"http://example.com/service.wsdl", "types.xsd", "http://example.com/types.xsd"},
	}
	for _, tt := range tests {
		got, err := resolveRelativeURL(tt.base, tt.location)
		if err != nil {
			t.Fatalf("resolveRelativeURL(%q, %q) error: %v", tt.base, tt.location, err)
		}
		if got != tt.want {
			t.Errorf("resolveRelativeURL(%q, %q) = %q, want %q", tt.base, tt.location, got, tt.want)
		}
	}
}
