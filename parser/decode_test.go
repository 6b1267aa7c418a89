package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/wsdltools/wsdlerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	nsOne = "http://example.com/one"
	nsTwo = "http://example.com/two"
)

func parseFixture(t *testing.T, name string) *ParseResult {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	result, err := New().ParseBytes(data)
	require.NoError(t, err)
	return result
}

func TestParseBytes_Scalars(t *testing.T) {
	defs := parseFixture(t, "example.wsdl").Definitions

	assert.Equal(t, nsOne, defs.TargetNamespace)
	assert.Equal(t, "UserService", defs.ServiceName)
	assert.Equal(t, "http://example.com/soap/user", defs.Endpoint)
	assert.Equal(t, ElementFormDefaultQualified, defs.ElementFormDefault)
}

func TestParseBytes_Namespaces(t *testing.T) {
	defs := parseFixture(t, "example.wsdl").Definitions

	assert.Equal(t, nsOne, defs.Namespaces["ns1"])
	assert.Equal(t, nsTwo, defs.Namespaces["ns2"])
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema", defs.Namespaces["xsd"])
	assert.Equal(t, "http://schemas.xmlsoap.org/wsdl/soap/", defs.Namespaces["soap"])
}

func TestParseBytes_Types(t *testing.T) {
	defs := parseFixture(t, "example.wsdl").Definitions

	require.Equal(t, []string{nsOne, nsTwo}, defs.TypeNamespaceOrder)

	one := defs.Types[nsOne]
	require.NotNil(t, one)
	for _, name := range []string{"CreateUserRequest", "UserType", "Address", "AdminUserType", "CreateUserResponse"} {
		assert.Contains(t, one, name)
	}

	// Named complexType fields keep declared order and raw attributes.
	req := one["CreateUserRequest"]
	require.NotNil(t, req)
	assert.Equal(t, []string{"user", "address", "tags"}, req.Order)
	assert.Equal(t, "ns1:UserType", req.Fields["user"].Type)
	assert.Empty(t, req.Fields["user"].MinOccurs)
	assert.Equal(t, "0", req.Fields["address"].MinOccurs)
	tags := req.Fields["tags"]
	assert.Equal(t, "unbounded", tags.MaxOccurs)
	assert.Equal(t, "true", tags.Nillable)

	// Top-level element with an inline complexType registers under the
	// element name.
	resp := one["CreateUserResponse"]
	require.NotNil(t, resp)
	assert.Equal(t, []string{"id"}, resp.Order)

	// Elements referencing a named type by attribute do not create a
	// second record.
	assert.NotContains(t, one, "CreateUser")

	// complexContent extension records the base and its own fields.
	admin := one["AdminUserType"]
	require.NotNil(t, admin)
	assert.Equal(t, "ns1:UserType", admin.BaseType)
	assert.Equal(t, []string{"role"}, admin.Order)

	two := defs.Types[nsTwo]
	require.NotNil(t, two)
	assert.Equal(t, []string{"postcode"}, two["Address"].Order)
}

func TestParseBytes_Operations(t *testing.T) {
	defs := parseFixture(t, "example.wsdl").Definitions

	op := defs.Operations["CreateUser"]
	require.NotNil(t, op)
	assert.Equal(t, "urn:example:createUser", op.SOAPAction)
	assert.Equal(t, "CreateUser", op.Input, "element part name with prefix stripped")
	assert.Equal(t, "CreateUserResponse", op.Output)
	require.Len(t, op.Parameters, 2)
	assert.Equal(t, Parameter{Name: "parameters", Type: "ns1:CreateUser"}, op.Parameters[0])
	assert.Equal(t, Parameter{Name: "trace", Type: "xsd:string"}, op.Parameters[1])
}

func TestParseBytes_MalformedXML(t *testing.T) {
	_, err := New().ParseBytes([]byte("<definitions><unclosed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wsdlerrors.ErrParse))
}

func TestParseBytes_NotWSDL(t *testing.T) {
	_, err := New().ParseBytes([]byte(`<?xml version="1.0"?><html><body/></html>`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wsdlerrors.ErrParse))
}

func TestParseBytes_Latin1Charset(t *testing.T) {
	result := parseFixture(t, "latin1.wsdl")

	assert.Equal(t, "CaféService", result.Definitions.ServiceName)
	assert.Contains(t, result.Definitions.Types["http://example.com/cafe"], "Menu")
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tns:Address", "Address"},
		{"Address", "Address"},
		{"", ""},
		{"a:b:c", "b:c"},
	}
	for _, tt := range tests {
		if got := localName(tt.in); got != tt.want {
			t.Errorf("localName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMessageTypeName(t *testing.T) {
	withElement := &xmlMessage{Parts: []xmlPart{{Name: "p", Element: "tns:Create", Type: "tns:Ignored"}}}
	if got := messageTypeName(withElement); got != "Create" {
		t.Errorf("messageTypeName(element part) = %q, want Create", got)
	}

	withType := &xmlMessage{Parts: []xmlPart{{Name: "p", Type: "tns:CreateRequest"}}}
	if got := messageTypeName(withType); got != "CreateRequest" {
		t.Errorf("messageTypeName(type part) = %q, want CreateRequest", got)
	}

	if got := messageTypeName(&xmlMessage{}); got != "" {
		t.Errorf("messageTypeName(no parts) = %q, want empty", got)
	}
}
