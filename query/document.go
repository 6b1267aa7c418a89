package query

import (
	"github.com/erraggy/wsdltools/parser"
	"github.com/erraggy/wsdltools/wsdlerrors"
)

// Document is the public query surface over one parsed WSDL document.
//
// All derived structures (the type index, resolution results, normalized
// definitions, reporting listings) are computed lazily on first access and
// memoized for the lifetime of the Document. Cache insertion is the only
// mutation point; nothing is ever recomputed, evicted, or invalidated.
//
// A Document is not safe for concurrent use. The memoization pattern is not
// safe under concurrent first-access races: confine each instance to one
// goroutine, or guard every query with exclusive synchronization.
type Document struct {
	result *parser.ParseResult
	defs   *parser.Definitions

	// elementFormDefault overrides the parsed value when set explicitly.
	elementFormDefault string

	index          *typeIndex
	resolutions    map[resolutionKey]*parser.TypeRecord
	definitions    map[string]*TypeDefinition
	typeNamespaces []QualifiedPath
	typeReferences []TypeReference
	reportsBuilt   bool
}

// New creates a Document over an already-parsed result.
// Constructing a Document without a parsed document to query is a
// configuration error: it is a programmer error, not a data error, and
// fails outright rather than degrading.
func New(result *parser.ParseResult) (*Document, error) {
	if result == nil || result.Definitions == nil {
		return nil, &wsdlerrors.ConfigError{
			Option:  "result",
			Message: "no parsed document supplied",
		}
	}
	return &Document{
		result:      result,
		defs:        result.Definitions,
		resolutions: make(map[resolutionKey]*parser.TypeRecord),
		definitions: make(map[string]*TypeDefinition),
	}, nil
}

// Load parses a WSDL document with the given parser options and wraps the
// result in a Document. It is shorthand for parser.ParseWithOptions
// followed by New.
func Load(opts ...parser.Option) (*Document, error) {
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	return New(result)
}

// Result returns the underlying parse result.
func (d *Document) Result() *parser.ParseResult {
	return d.result
}

// Endpoint returns the SOAP address location of the service.
func (d *Document) Endpoint() string {
	return d.defs.Endpoint
}

// TargetNamespace returns the target namespace of the definitions element.
func (d *Document) TargetNamespace() string {
	return d.defs.TargetNamespace
}

// ServiceName returns the declared service name.
func (d *Document) ServiceName() string {
	return d.defs.ServiceName
}

// Namespaces returns the prefix-to-URI namespace table declared by the
// document. The returned map is the parser's own table; treat it as
// read-only.
func (d *Document) Namespaces() map[string]string {
	return d.defs.Namespaces
}

// ElementFormDefault returns the document's elementFormDefault, or the
// value set explicitly via SetElementFormDefault.
func (d *Document) ElementFormDefault() string {
	if d.elementFormDefault != "" {
		return d.elementFormDefault
	}
	if d.defs.ElementFormDefault != "" {
		return d.defs.ElementFormDefault
	}
	return parser.ElementFormDefaultUnqualified
}

// SetElementFormDefault overrides the parsed elementFormDefault.
// Values outside "unqualified" and "qualified" are rejected with a
// configuration error.
func (d *Document) SetElementFormDefault(value string) error {
	switch value {
	case parser.ElementFormDefaultUnqualified, parser.ElementFormDefaultQualified:
		d.elementFormDefault = value
		return nil
	default:
		return &wsdlerrors.ConfigError{
			Option:  "elementFormDefault",
			Value:   value,
			Message: "must be unqualified or qualified",
		}
	}
}
