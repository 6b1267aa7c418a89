package mcpserver

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"
)

type parseInput struct {
	Spec wsdlInput `json:"spec"           jsonschema:"The WSDL document to parse"`
	Full bool      `json:"full,omitempty" jsonschema:"Include a YAML listing of every type and its fields"`
}

type parseOutput struct {
	Service            string            `json:"service"`
	Endpoint           string            `json:"endpoint,omitempty"`
	TargetNamespace    string            `json:"target_namespace"`
	ElementFormDefault string            `json:"element_form_default"`
	OperationCount     int               `json:"operation_count"`
	TypeCount          int               `json:"type_count"`
	Namespaces         map[string]string `json:"namespaces,omitempty"`
	Warnings           []string          `json:"warnings,omitempty"`
	FullDocument       string            `json:"full_document,omitempty"`
}

// fullField mirrors one schema field in the full YAML listing.
type fullField struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	MinOccurs string `yaml:"minOccurs,omitempty"`
	MaxOccurs string `yaml:"maxOccurs,omitempty"`
	Nillable  string `yaml:"nillable,omitempty"`
}

// fullTypeListing is keyed by namespace, then lists each type with its fields.
type fullTypeEntry struct {
	Name   string      `yaml:"name"`
	Fields []fullField `yaml:"fields,omitempty"`
}

type fullNamespaceEntry struct {
	Namespace string          `yaml:"namespace"`
	Types     []fullTypeEntry `yaml:"types"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	defs := doc.Result().Definitions
	typeCount := 0
	for _, byName := range defs.Types {
		typeCount += len(byName)
	}

	output := parseOutput{
		Service:            doc.ServiceName(),
		Endpoint:           doc.Endpoint(),
		TargetNamespace:    doc.TargetNamespace(),
		ElementFormDefault: doc.ElementFormDefault(),
		OperationCount:     len(defs.Operations),
		TypeCount:          typeCount,
		Namespaces:         doc.Namespaces(),
		Warnings:           doc.Result().Warnings,
	}

	if input.Full {
		listing := makeSlice[fullNamespaceEntry](len(defs.TypeNamespaceOrder))
		for _, ns := range defs.TypeNamespaceOrder {
			byName := defs.Types[ns]
			names := make([]string, 0, len(byName))
			for name := range byName {
				names = append(names, name)
			}
			sort.Strings(names)

			entry := fullNamespaceEntry{Namespace: ns}
			for _, name := range names {
				rec := byName[name]
				typeEntry := fullTypeEntry{Name: name}
				for _, fieldName := range rec.Order {
					field := rec.Fields[fieldName]
					if field == nil {
						continue
					}
					typeEntry.Fields = append(typeEntry.Fields, fullField{
						Name:      fieldName,
						Type:      field.Type,
						MinOccurs: field.MinOccurs,
						MaxOccurs: field.MaxOccurs,
						Nillable:  field.Nillable,
					})
				}
				entry.Types = append(entry.Types, typeEntry)
			}
			listing = append(listing, entry)
		}

		data, err := yaml.Marshal(listing)
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
