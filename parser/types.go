package parser

// Definitions is the flat, structural view of one parsed WSDL document.
// It is the input handed to the query package and is treated as read-only
// after parsing.
type Definitions struct {
	// Namespaces maps XML namespace prefixes to namespace URIs, as declared
	// on the definitions element and on embedded schema elements.
	Namespaces map[string]string

	// Operations maps operation names (as declared in the portType) to
	// their binding and message information.
	Operations map[string]*Operation

	// Types maps a namespace URI to the schema types declared under it,
	// keyed by local type name. Within one namespace, type names are unique;
	// the parser reports whatever the document declares.
	Types map[string]map[string]*TypeRecord

	// TypeNamespaceOrder lists the namespace URIs in Types in the order
	// their schemas were first encountered. Lookup code that scans Types
	// must iterate in this order so results stay deterministic.
	TypeNamespaceOrder []string

	// Endpoint is the SOAP address location of the first service port.
	Endpoint string

	// TargetNamespace is the targetNamespace of the definitions element.
	TargetNamespace string

	// ElementFormDefault is the elementFormDefault of the schema matching
	// the target namespace: "unqualified" (default) or "qualified".
	ElementFormDefault string

	// ServiceName is the name attribute of the service element.
	ServiceName string
}

// Operation describes one portType operation together with its SOAP action
// and the type names its input and output messages refer to.
type Operation struct {
	// Name is the operation name as declared in the portType.
	Name string

	// SOAPAction is the soapAction attribute of the binding operation.
	SOAPAction string

	// Input is the local type or element name the input message refers to.
	Input string

	// Output is the local type or element name the output message refers to.
	Output string

	// Parameters lists the input message parts in declared order.
	Parameters []Parameter
}

// Parameter is one part of an operation's input message.
type Parameter struct {
	// Name is the part name.
	Name string

	// Type is the part's element or type attribute, kept in its raw,
	// possibly prefix-qualified form (e.g. "tns:CreateUser").
	Type string
}

// TypeRecord is the as-parsed, pre-normalization representation of one
// schema type: a named complexType, or a top-level element with an inline
// complexType. Field entries keep their raw attribute strings; the query
// package derives normalized metadata from them.
type TypeRecord struct {
	// Name is the local type name.
	Name string

	// Namespace is the targetNamespace of the schema declaring the type.
	Namespace string

	// Order lists field names in their declared sequence. Fields holds
	// exactly this set of keys.
	Order []string

	// BaseType is the base attribute of a complexContent extension, in its
	// raw prefix-qualified form. Empty for non-extension types.
	BaseType string

	// Fields maps field names to their raw schema attributes.
	Fields map[string]*FieldRecord
}

// FieldRecord holds the raw schema attributes of one field (sequence
// element) before normalization. Absent attributes are empty strings.
type FieldRecord struct {
	// Type is the element's type attribute in its raw, possibly
	// prefix-qualified form (e.g. "xsd:string" or "tns:Address").
	Type string

	// MinOccurs is the raw minOccurs attribute ("" when absent).
	MinOccurs string

	// MaxOccurs is the raw maxOccurs attribute ("" when absent).
	MaxOccurs string

	// Nillable is the raw nillable attribute ("" when absent).
	Nillable string
}

// addType records a type under its namespace, tracking first-seen namespace
// order. Later declarations with the same name in the same namespace win,
// mirroring how merged includes overlay their parent schema.
func (d *Definitions) addType(rec *TypeRecord) {
	if d.Types == nil {
		d.Types = make(map[string]map[string]*TypeRecord)
	}
	byName, ok := d.Types[rec.Namespace]
	if !ok {
		byName = make(map[string]*TypeRecord)
		d.Types[rec.Namespace] = byName
		d.TypeNamespaceOrder = append(d.TypeNamespaceOrder, rec.Namespace)
	}
	byName[rec.Name] = rec
}
