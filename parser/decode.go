package parser

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/erraggy/wsdltools/wsdlerrors"
)

// XML mapping structs for WSDL 1.1 with embedded XML Schema.
// encoding/xml matches these by local name, so wsdl:, soap:, and xsd:
// prefixed documents all decode the same way.

type xmlDefinitions struct {
	Name            string        `xml:"name,attr"`
	TargetNamespace string        `xml:"targetNamespace,attr"`
	Attrs           []xml.Attr    `xml:",any,attr"`
	Types           xmlTypes      `xml:"types"`
	Messages        []xmlMessage  `xml:"message"`
	PortTypes       []xmlPortType `xml:"portType"`
	Bindings        []xmlBinding  `xml:"binding"`
	Services        []xmlService  `xml:"service"`
}

type xmlTypes struct {
	Schemas []xmlSchema `xml:"schema"`
}

type xmlSchema struct {
	TargetNamespace    string           `xml:"targetNamespace,attr"`
	ElementFormDefault string           `xml:"elementFormDefault,attr"`
	Attrs              []xml.Attr       `xml:",any,attr"`
	Imports            []xmlSchemaRef   `xml:"import"`
	Includes           []xmlSchemaRef   `xml:"include"`
	Elements           []xmlElement     `xml:"element"`
	ComplexTypes       []xmlComplexType `xml:"complexType"`
}

type xmlSchemaRef struct {
	Namespace      string `xml:"namespace,attr"`
	SchemaLocation string `xml:"schemaLocation,attr"`
}

type xmlElement struct {
	Name        string          `xml:"name,attr"`
	Ref         string          `xml:"ref,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	Nillable    string          `xml:"nillable,attr"`
	ComplexType *xmlComplexType `xml:"complexType"`
}

type xmlComplexType struct {
	Name           string             `xml:"name,attr"`
	Sequence       []xmlElement       `xml:"sequence>element"`
	All            []xmlElement       `xml:"all>element"`
	ComplexContent *xmlComplexContent `xml:"complexContent"`
}

type xmlComplexContent struct {
	Extension *xmlExtension `xml:"extension"`
}

type xmlExtension struct {
	Base     string       `xml:"base,attr"`
	Sequence []xmlElement `xml:"sequence>element"`
}

type xmlMessage struct {
	Name  string    `xml:"name,attr"`
	Parts []xmlPart `xml:"part"`
}

type xmlPart struct {
	Name    string `xml:"name,attr"`
	Element string `xml:"element,attr"`
	Type    string `xml:"type,attr"`
}

type xmlPortType struct {
	Name       string          `xml:"name,attr"`
	Operations []xmlPortTypeOp `xml:"operation"`
}

type xmlPortTypeOp struct {
	Name   string `xml:"name,attr"`
	Input  xmlIO  `xml:"input"`
	Output xmlIO  `xml:"output"`
}

type xmlIO struct {
	Message string `xml:"message,attr"`
}

type xmlBinding struct {
	Name       string         `xml:"name,attr"`
	Operations []xmlBindingOp `xml:"operation"`
}

// xmlBindingOp is a wsdl:operation inside a binding; its nested "operation"
// child is the soap:operation carrying the soapAction attribute.
type xmlBindingOp struct {
	Name          string            `xml:"name,attr"`
	SOAPOperation *xmlSOAPOperation `xml:"operation"`
}

type xmlSOAPOperation struct {
	SOAPAction string `xml:"soapAction,attr"`
}

type xmlService struct {
	Name  string    `xml:"name,attr"`
	Ports []xmlPort `xml:"port"`
}

type xmlPort struct {
	Name    string     `xml:"name,attr"`
	Address xmlAddress `xml:"address"`
}

type xmlAddress struct {
	Location string `xml:"location,attr"`
}

// pendingRef is an unresolved xsd:include or xsd:import discovered during
// decoding. The loader fetches and merges these after the main document is
// decoded.
type pendingRef struct {
	// RefType is "include" or "import".
	RefType string
	// Location is the raw schemaLocation attribute.
	Location string
	// Namespace is the import's namespace attribute ("" for includes).
	Namespace string
	// ParentTNS is the targetNamespace of the schema containing the
	// reference; includes inherit it when the fetched schema has none.
	ParentTNS string
}

func newDecoder(data []byte) *xml.Decoder {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	return dec
}

// decodeDefinitions decodes a WSDL document body.
func decodeDefinitions(data []byte) (*xmlDefinitions, error) {
	var defs xmlDefinitions
	if err := newDecoder(data).Decode(&defs); err != nil {
		return nil, &wsdlerrors.ParseError{Message: "failed to decode WSDL definitions", Cause: err}
	}
	return &defs, nil
}

// decodeSchemaDocument decodes a standalone XML Schema document, such as one
// fetched for an xsd:include or xsd:import.
func decodeSchemaDocument(data []byte) (*xmlSchema, error) {
	var schema xmlSchema
	if err := newDecoder(data).Decode(&schema); err != nil {
		return nil, &wsdlerrors.ParseError{Message: "failed to decode schema document", Cause: err}
	}
	return &schema, nil
}

// buildDefinitions converts the decoded XML tree into the flat Definitions
// shape and reports any external schema references left to resolve.
func buildDefinitions(x *xmlDefinitions) (*Definitions, []pendingRef) {
	d := &Definitions{
		Namespaces:      make(map[string]string),
		Operations:      make(map[string]*Operation),
		Types:           make(map[string]map[string]*TypeRecord),
		TargetNamespace: x.TargetNamespace,
		ServiceName:     x.Name,
	}
	mergeNamespaceAttrs(d.Namespaces, x.Attrs)

	var refs []pendingRef
	for i := range x.Types.Schemas {
		refs = append(refs, d.mergeSchema(&x.Types.Schemas[i], x.TargetNamespace)...)
	}
	if d.ElementFormDefault == "" {
		d.ElementFormDefault = ElementFormDefaultUnqualified
	}

	// Service name falls back to the service element when the definitions
	// element has no name attribute.
	if d.ServiceName == "" && len(x.Services) > 0 {
		d.ServiceName = x.Services[0].Name
	}
	for _, svc := range x.Services {
		for _, port := range svc.Ports {
			if port.Address.Location != "" {
				d.Endpoint = port.Address.Location
				break
			}
		}
		if d.Endpoint != "" {
			break
		}
	}

	d.buildOperations(x)
	return d, refs
}

// mergeSchema records the schema's namespace declarations and type
// declarations into the Definitions, returning its unresolved includes and
// imports. fallbackTNS is used when the schema declares no targetNamespace,
// which is how chameleon includes adopt their including schema's namespace.
func (d *Definitions) mergeSchema(s *xmlSchema, fallbackTNS string) []pendingRef {
	tns := s.TargetNamespace
	if tns == "" {
		tns = fallbackTNS
	}
	mergeNamespaceAttrs(d.Namespaces, s.Attrs)

	// elementFormDefault of the schema matching the target namespace wins;
	// a schema for another namespace never overrides an earlier value.
	if s.ElementFormDefault != "" && (d.ElementFormDefault == "" || tns == d.TargetNamespace) {
		d.ElementFormDefault = s.ElementFormDefault
	}

	for i := range s.ComplexTypes {
		ct := &s.ComplexTypes[i]
		if ct.Name == "" {
			continue
		}
		d.addType(typeRecordFromComplexType(ct.Name, tns, ct))
	}
	for i := range s.Elements {
		el := &s.Elements[i]
		if el.Name == "" || el.ComplexType == nil {
			continue
		}
		d.addType(typeRecordFromComplexType(el.Name, tns, el.ComplexType))
	}

	var refs []pendingRef
	for _, inc := range s.Includes {
		if inc.SchemaLocation == "" {
			continue
		}
		refs = append(refs, pendingRef{RefType: "include", Location: inc.SchemaLocation, ParentTNS: tns})
	}
	for _, imp := range s.Imports {
		if imp.SchemaLocation == "" {
			// Imports without a schemaLocation rely on the consumer already
			// knowing the namespace; there is nothing to fetch.
			continue
		}
		refs = append(refs, pendingRef{RefType: "import", Location: imp.SchemaLocation, Namespace: imp.Namespace, ParentTNS: tns})
	}
	return refs
}

// typeRecordFromComplexType flattens a complexType into a TypeRecord,
// collecting fields from sequence, all, and complexContent extension groups.
func typeRecordFromComplexType(name, namespace string, ct *xmlComplexType) *TypeRecord {
	rec := &TypeRecord{
		Name:      name,
		Namespace: namespace,
		Fields:    make(map[string]*FieldRecord),
	}

	addFields := func(elements []xmlElement) {
		for i := range elements {
			el := &elements[i]
			fieldName := el.Name
			if fieldName == "" {
				fieldName = localName(el.Ref)
			}
			if fieldName == "" {
				continue
			}
			if _, exists := rec.Fields[fieldName]; !exists {
				rec.Order = append(rec.Order, fieldName)
			}
			rec.Fields[fieldName] = &FieldRecord{
				Type:      el.Type,
				MinOccurs: el.MinOccurs,
				MaxOccurs: el.MaxOccurs,
				Nillable:  el.Nillable,
			}
		}
	}

	addFields(ct.Sequence)
	addFields(ct.All)
	if ct.ComplexContent != nil && ct.ComplexContent.Extension != nil {
		rec.BaseType = ct.ComplexContent.Extension.Base
		addFields(ct.ComplexContent.Extension.Sequence)
	}
	return rec
}

// buildOperations joins portType operations with their messages and binding
// soap actions.
func (d *Definitions) buildOperations(x *xmlDefinitions) {
	messages := make(map[string]*xmlMessage, len(x.Messages))
	for i := range x.Messages {
		messages[x.Messages[i].Name] = &x.Messages[i]
	}

	actions := make(map[string]string)
	for _, binding := range x.Bindings {
		for _, op := range binding.Operations {
			if op.SOAPOperation != nil {
				actions[op.Name] = op.SOAPOperation.SOAPAction
			}
		}
	}

	for _, pt := range x.PortTypes {
		for _, op := range pt.Operations {
			operation := &Operation{
				Name:       op.Name,
				SOAPAction: actions[op.Name],
			}
			if msg := messages[localName(op.Input.Message)]; msg != nil {
				operation.Input = messageTypeName(msg)
				for _, part := range msg.Parts {
					ref := part.Element
					if ref == "" {
						ref = part.Type
					}
					operation.Parameters = append(operation.Parameters, Parameter{Name: part.Name, Type: ref})
				}
			}
			if msg := messages[localName(op.Output.Message)]; msg != nil {
				operation.Output = messageTypeName(msg)
			}
			d.Operations[op.Name] = operation
		}
	}
}

// messageTypeName derives the local type or element name a message refers
// to: the first part's element attribute, falling back to its type
// attribute, with any namespace prefix stripped.
func messageTypeName(msg *xmlMessage) string {
	if len(msg.Parts) == 0 {
		return ""
	}
	part := msg.Parts[0]
	if part.Element != "" {
		return localName(part.Element)
	}
	return localName(part.Type)
}

// mergeNamespaceAttrs copies xmlns declarations from raw attributes into the
// prefix table. Existing prefixes are not overwritten; the outermost
// declaration wins, matching document scoping for the flat table we keep.
func mergeNamespaceAttrs(namespaces map[string]string, attrs []xml.Attr) {
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "xmlns":
			if _, exists := namespaces[attr.Name.Local]; !exists {
				namespaces[attr.Name.Local] = attr.Value
			}
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			if _, exists := namespaces[""]; !exists {
				namespaces[""] = attr.Value
			}
		}
	}
}

// localName strips a namespace prefix from a qualified name.
// "tns:Address" becomes "Address"; unqualified names pass through.
func localName(qname string) string {
	if i := strings.Index(qname, ":"); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// validateDefinitions performs minimal structural checks on a decoded
// document: it must actually be a WSDL definitions element.
func validateDefinitions(x *xmlDefinitions) error {
	if x.TargetNamespace == "" && len(x.Types.Schemas) == 0 && len(x.PortTypes) == 0 && len(x.Messages) == 0 {
		return &wsdlerrors.ParseError{Message: "document does not look like a WSDL definitions element"}
	}
	return nil
}
