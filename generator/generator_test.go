package generator

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/wsdltools/parser"
	"github.com/erraggy/wsdltools/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateTestService(t *testing.T) *GenerateResult {
	t.Helper()
	result, err := New().GenerateFromFile(filepath.Join("testdata", "user-service.wsdl"))
	require.NoError(t, err)
	return result
}

func TestGenerateFromFile(t *testing.T) {
	result := generateTestService(t)

	assert.Equal(t, "types", result.PackageName)
	assert.Equal(t, filepath.Join("testdata", "user-service.wsdl"), result.SourcePath)
	assert.False(t, result.HasUnresolvedReferences())

	file := result.GetFile("types.go")
	require.NotNil(t, file)
	content := string(file.Content)

	assert.Contains(t, content, "// Code generated by wsdltools. DO NOT EDIT.")
	assert.Contains(t, content, "package types")
	assert.Contains(t, content, "type CreateUserRequest struct {")
	assert.Contains(t, content, "type CreateUserResponse struct {")
	assert.Contains(t, content, "type UserType struct {")
	assert.Contains(t, content, "type Address struct {")
}

func TestGenerate_ReachabilityFromOperations(t *testing.T) {
	result := generateTestService(t)

	// AuditRecord is declared but no operation input or output reaches it.
	content := string(result.GetFile("types.go").Content)
	assert.NotContains(t, content, "AuditRecord")
	assert.Equal(t, 4, result.GeneratedTypes)
}

func TestGenerate_FieldMapping(t *testing.T) {
	result := generateTestService(t)
	content := string(result.GetFile("types.go").Content)

	// Required struct reference becomes a pointer without omitempty.
	assert.Regexp(t, "User\\s+\\*UserType\\s+`xml:\"user\"`", content)
	// Optional struct reference keeps the pointer and gains omitempty.
	assert.Regexp(t, "Address\\s+\\*Address\\s+`xml:\"address,omitempty\"`", content)
	// Repeated scalar becomes a slice.
	assert.Regexp(t, "Tags\\s+\\[\\]string\\s+`xml:\"tags,omitempty\"`", content)
	// Required scalar stays a plain value.
	assert.Regexp(t, "Login\\s+string\\s+`xml:\"login\"`", content)
	// Optional scalar becomes a pointer.
	assert.Regexp(t, "Age\\s+\\*int32\\s+`xml:\"age,omitempty\"`", content)
	// xsd:long maps to int64.
	assert.Regexp(t, "Id\\s+int64\\s+`xml:\"id\"`", content)
}

func TestGenerate_TimeImportAdded(t *testing.T) {
	// xsd:dateTime renders as time.Time; the import fixer must add the
	// time package even though the renderer emits no import block.
	result := generateTestService(t)
	content := string(result.GetFile("types.go").Content)

	assert.Regexp(t, "Created\\s+\\*time\\.Time\\s+`xml:\"created,omitempty\"`", content)
	assert.Contains(t, content, `"time"`)
}

func TestGenerate_SuffixFallbackReference(t *testing.T) {
	// CreateUserResponse references tns:User, which only resolves through
	// the UserType declaration. The field must use the resolved struct.
	result := generateTestService(t)
	content := string(result.GetFile("types.go").Content)

	assert.Regexp(t, `User\s+\*UserType`, content)
	assert.False(t, result.HasUnresolvedReferences())
}

func TestGenerate_ValuePointersDisabled(t *testing.T) {
	g := New()
	g.UsePointers = false
	result, err := g.GenerateFromFile(filepath.Join("testdata", "user-service.wsdl"))
	require.NoError(t, err)

	content := string(result.GetFile("types.go").Content)
	assert.Regexp(t, "Age\\s+int32\\s+`xml:\"age,omitempty\"`", content)
	// Struct references keep pointer indirection regardless.
	assert.Regexp(t, `Address\s+\*Address`, content)
}

func TestGenerate_PackageNameOverride(t *testing.T) {
	g := New()
	g.PackageName = "userservice"
	result, err := g.GenerateFromFile(filepath.Join("testdata", "user-service.wsdl"))
	require.NoError(t, err)

	assert.Equal(t, "userservice", result.PackageName)
	assert.Contains(t, string(result.GetFile("types.go").Content), "package userservice")
}

func TestGenerate_NoOperationsFallsBackToAllTypes(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<definitions targetNamespace="http://example.com/bare"
    xmlns="http://schemas.xmlsoap.org/wsdl/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <types>
    <xsd:schema targetNamespace="http://example.com/bare">
      <xsd:complexType name="Standalone">
        <xsd:sequence>
          <xsd:element name="value" type="xsd:string"/>
        </xsd:sequence>
      </xsd:complexType>
    </xsd:schema>
  </types>
</definitions>`)

	doc, err := query.Load(parser.WithBytes(data))
	require.NoError(t, err)

	result, err := New().GenerateFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, result.GeneratedTypes)
	assert.Contains(t, string(result.GetFile("types.go").Content), "type Standalone struct {")
}

func TestGenerate_SameNameAcrossNamespaces(t *testing.T) {
	// Two namespaces each declare an Address type with different shapes.
	// Both must be generated, with a numeric suffix disambiguating the
	// second Go type name.
	data := []byte(`<?xml version="1.0"?>
<definitions targetNamespace="http://example.com/billing"
    xmlns="http://schemas.xmlsoap.org/wsdl/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <types>
    <xsd:schema targetNamespace="http://example.com/billing">
      <xsd:complexType name="Address">
        <xsd:sequence>
          <xsd:element name="street" type="xsd:string"/>
        </xsd:sequence>
      </xsd:complexType>
    </xsd:schema>
    <xsd:schema targetNamespace="http://example.com/shipping">
      <xsd:complexType name="Address">
        <xsd:sequence>
          <xsd:element name="depot" type="xsd:string"/>
        </xsd:sequence>
      </xsd:complexType>
    </xsd:schema>
  </types>
</definitions>`)

	doc, err := query.Load(parser.WithBytes(data))
	require.NoError(t, err)

	result, err := New().GenerateFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, result.GeneratedTypes)

	content := string(result.GetFile("types.go").Content)
	assert.Contains(t, content, "type Address struct {")
	assert.Contains(t, content, "type Address2 struct {")
	assert.Regexp(t, `Street\s+string`, content)
	assert.Regexp(t, `Depot\s+string`, content)
}

func TestGenerate_UnresolvedReference(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<definitions targetNamespace="http://example.com/broken"
    xmlns="http://schemas.xmlsoap.org/wsdl/"
    xmlns:tns="http://example.com/broken"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <types>
    <xsd:schema targetNamespace="http://example.com/broken">
      <xsd:complexType name="PingRequest">
        <xsd:sequence>
          <xsd:element name="payload" type="tns:MissingPayload"/>
        </xsd:sequence>
      </xsd:complexType>
    </xsd:schema>
  </types>
  <message name="PingInput">
    <part name="parameters" type="tns:PingRequest"/>
  </message>
  <portType name="PingPortType">
    <operation name="Ping">
      <input message="tns:PingInput"/>
    </operation>
  </portType>
</definitions>`)

	doc, err := query.Load(parser.WithBytes(data))
	require.NoError(t, err)

	result, err := New().GenerateFromDocument(doc)
	require.NoError(t, err)
	assert.True(t, result.HasUnresolvedReferences())
	assert.Equal(t, []string{"MissingPayload"}, result.UnresolvedReferences)
	// The dangling field degrades to any rather than breaking generation.
	assert.Regexp(t, `Payload\s+any`, string(result.GetFile("types.go").Content))
}

func TestGenerate_NilDocument(t *testing.T) {
	_, err := New().GenerateFromDocument(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document cannot be nil")
}

func TestGenerate_OutputIsFormatted(t *testing.T) {
	result := generateTestService(t)
	content := string(result.GetFile("types.go").Content)

	// Formatted output aligns struct fields with tabs and ends with a newline.
	assert.True(t, strings.HasSuffix(content, "\n"))
	assert.NotContains(t, content, "\n\n\n")
}
