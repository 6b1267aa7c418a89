package query

import (
	"testing"

	"github.com/erraggy/wsdltools/parser"
	"github.com/stretchr/testify/require"
)

const (
	nsOne = "http://example.com/one"
	nsTwo = "http://example.com/two"
)

// testDefinitions builds a two-namespace document by hand: both namespaces
// declare an Address type with different fields, nsOne also declares
// UserType (suffix-convention only) and both Foo and FooType.
func testDefinitions() *parser.Definitions {
	defs := &parser.Definitions{
		Namespaces: map[string]string{
			"ns1":  nsOne,
			"ns2":  nsTwo,
			"xsd":  "http://www.w3.org/2001/XMLSchema",
			"soap": "http://schemas.xmlsoap.org/wsdl/soap/",
		},
		Operations:         make(map[string]*parser.Operation),
		Endpoint:           "http://example.com/soap",
		TargetNamespace:    nsOne,
		ElementFormDefault: parser.ElementFormDefaultUnqualified,
		ServiceName:        "ExampleService",
	}

	addType := func(ns, name string, fields ...[2]string) {
		rec := &parser.TypeRecord{
			Name:      name,
			Namespace: ns,
			Fields:    make(map[string]*parser.FieldRecord),
		}
		for _, f := range fields {
			rec.Order = append(rec.Order, f[0])
			rec.Fields[f[0]] = &parser.FieldRecord{Type: f[1]}
		}
		if defs.Types == nil {
			defs.Types = make(map[string]map[string]*parser.TypeRecord)
		}
		if _, ok := defs.Types[ns]; !ok {
			defs.Types[ns] = make(map[string]*parser.TypeRecord)
			defs.TypeNamespaceOrder = append(defs.TypeNamespaceOrder, ns)
		}
		defs.Types[ns][name] = rec
	}

	addType(nsOne, "Address", [2]string{"street", "xsd:string"}, [2]string{"city", "xsd:string"})
	addType(nsTwo, "Address", [2]string{"postcode", "xsd:string"})
	addType(nsOne, "UserType", [2]string{"login", "xsd:string"})
	addType(nsOne, "Foo", [2]string{"literal", "xsd:string"})
	addType(nsOne, "FooType", [2]string{"convention", "xsd:string"})
	addType(nsTwo, "Shared", [2]string{"fromTwo", "xsd:string"})
	addType(nsOne, "SharedType", [2]string{"suffixOnly", "xsd:string"})
	addType(nsOne, "CreateUserRequest",
		[2]string{"user", "ns1:UserType"},
		[2]string{"address", "ns1:Address"})
	addType(nsOne, "CreateUserResponse", [2]string{"id", "xsd:long"})

	defs.Operations["CreateUser"] = &parser.Operation{
		Name:       "CreateUser",
		SOAPAction: "urn:example:createUser",
		Input:      "CreateUserRequest",
		Output:     "CreateUserResponse",
		Parameters: []parser.Parameter{
			{Name: "request", Type: "ns1:CreateUserRequest"},
			{Name: "trace", Type: "xsd:string"},
		},
	}
	defs.Operations["DeleteUser"] = &parser.Operation{
		Name:  "DeleteUser",
		Input: "User", // only UserType is declared; binder resolves via suffix
	}

	return defs
}

func testDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := New(&parser.ParseResult{Definitions: testDefinitions()})
	require.NoError(t, err)
	return doc
}
