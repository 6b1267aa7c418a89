package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/wsdltools/query"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type typeDefinitionInput struct {
	Spec wsdlInput `json:"spec" jsonschema:"The WSDL document to resolve against"`
	Name string    `json:"name" jsonschema:"Type name to resolve; may be namespace-qualified (ns1:Address) or bare"`
}

type typeFieldInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Required  bool   `json:"required"`
	Array     bool   `json:"array,omitempty"`
	Nillable  bool   `json:"nillable,omitempty"`
	MinOccurs string `json:"min_occurs,omitempty"`
	MaxOccurs string `json:"max_occurs,omitempty"`
}

type typeDefInfo struct {
	Name      string          `json:"name"`
	Namespace string          `json:"namespace,omitempty"`
	Fields    []typeFieldInfo `json:"fields,omitempty"`
}

// newTypeDefInfo converts a resolved definition for tool output.
// Returns nil for a nil definition so omitempty drops the field.
func newTypeDefInfo(def *query.TypeDefinition) *typeDefInfo {
	if def == nil {
		return nil
	}
	info := &typeDefInfo{
		Name:      def.Name,
		Namespace: def.Namespace,
	}
	info.Fields = makeSlice[typeFieldInfo](len(def.Order))
	for _, fieldName := range def.Order {
		fd := def.Fields[fieldName]
		info.Fields = append(info.Fields, typeFieldInfo{
			Name:      fieldName,
			Type:      fd.Type,
			Required:  fd.Required,
			Array:     fd.Array,
			Nillable:  fd.Nillable,
			MinOccurs: fd.MinOccurs,
			MaxOccurs: fd.MaxOccurs,
		})
	}
	return info
}

func handleTypeDefinition(_ context.Context, _ *mcp.CallToolRequest, input typeDefinitionInput) (*mcp.CallToolResult, *typeDefInfo, error) {
	if input.Name == "" {
		return errResult(fmt.Errorf("name is required")), nil, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	def := doc.TypeDefinition(input.Name)
	if def == nil {
		return errResult(fmt.Errorf("type %q not found", input.Name)), nil, nil
	}
	return nil, newTypeDefInfo(def), nil
}

type listTypesInput struct {
	Spec            wsdlInput `json:"spec"                        jsonschema:"The WSDL document to list types from"`
	UserDefinedOnly bool      `json:"user_defined_only,omitempty" jsonschema:"Skip types declared in standards-body namespaces"`
	Offset          int       `json:"offset,omitempty"            jsonschema:"Number of types to skip for pagination"`
	Limit           int       `json:"limit,omitempty"             jsonschema:"Maximum number of types to return"`
}

type typeListEntry struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
}

type listTypesOutput struct {
	Total int             `json:"total"`
	Count int             `json:"count"`
	Types []typeListEntry `json:"types,omitempty"`
}

// standardNamespaceURIPrefixes mirrors the query package's notion of
// standards-body namespaces, applied to URIs rather than prefixes.
var standardNamespaceURIPrefixes = []string{
	"http://www.w3.org/",
	"http://schemas.xmlsoap.org/",
}

func isStandardNamespace(uri string) bool {
	for _, std := range standardNamespaceURIPrefixes {
		if strings.HasPrefix(uri, std) {
			return true
		}
	}
	return false
}

func handleListTypes(_ context.Context, _ *mcp.CallToolRequest, input listTypesInput) (*mcp.CallToolResult, listTypesOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), listTypesOutput{}, nil
	}

	var entries []typeListEntry
	for _, qp := range doc.TypeNamespaces() {
		if len(qp.Path) != 1 {
			continue
		}
		if input.UserDefinedOnly && isStandardNamespace(qp.Namespace) {
			continue
		}
		entries = append(entries, typeListEntry{Name: qp.Path[0], Namespace: qp.Namespace})
	}

	page := paginate(entries, input.Offset, input.Limit)
	return nil, listTypesOutput{
		Total: len(entries),
		Count: len(page),
		Types: page,
	}, nil
}
