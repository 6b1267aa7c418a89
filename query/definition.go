package query

import (
	"strconv"

	"github.com/erraggy/wsdltools/parser"
)

// TypeDefinition is the normalized, cached, public representation of a
// resolved schema type. It is immutable once produced; callers must not
// modify it.
type TypeDefinition struct {
	// Name is the resolved type's declared name. For a suffix-fallback
	// resolution this is the actual declaration ("UserType"), not the
	// requested name ("User").
	Name string

	// Namespace is the URI of the namespace declaring the type.
	Namespace string

	// Fields maps field names to their normalized descriptors. Its key set
	// is exactly the names in Order.
	Fields map[string]FieldDescriptor

	// Order lists field names in their declared sequence.
	Order []string
}

// FieldDescriptor is the normalized metadata of one field, derived
// deterministically from the raw schema attributes.
type FieldDescriptor struct {
	// Type is the field's type reference in its raw, possibly
	// prefix-qualified form (e.g. "xsd:string" or "tns:Address").
	Type string

	// Required is true unless minOccurs is explicitly "0".
	Required bool

	// Array is true when maxOccurs is "unbounded" or a number above 1.
	Array bool

	// MinOccurs is the raw minOccurs attribute ("" when absent).
	MinOccurs string

	// MaxOccurs is the raw maxOccurs attribute ("" when absent).
	MaxOccurs string

	// Nillable is true when the nillable attribute is exactly "true".
	Nillable bool
}

// TypeDefinition resolves a type name into its normalized definition.
// The name may be namespace-qualified ("ns1:Address") or bare; bare names
// also match a declaration carrying the "Type" suffix when no literal
// declaration exists. Returns nil when the name cannot be resolved.
//
// Results are memoized under the requested name, including misses: repeated
// queries cost one map lookup, and repeated calls return the same cached
// instance.
func (d *Document) TypeDefinition(name string) *TypeDefinition {
	if def, done := d.definitions[name]; done {
		return def
	}
	var def *TypeDefinition
	if rec := d.resolveType(name, ""); rec != nil {
		def = newTypeDefinition(rec)
	}
	d.definitions[name] = def
	return def
}

// TypeDefinitionIn resolves a type by its declaring namespace URI and local
// name. Unlike TypeDefinition this is an exact lookup: no precedence scan,
// no "Type" suffix fallback, and no sharing of the name-keyed memo, so two
// same-named types in different namespaces stay distinct. Returns nil when
// the namespace or name is unknown.
func (d *Document) TypeDefinitionIn(namespace, name string) *TypeDefinition {
	rec := d.typeIndex().lookup(namespace, name)
	if rec == nil {
		return nil
	}
	return newTypeDefinition(rec)
}

// newTypeDefinition normalizes a raw type record. Order keeps the declared
// field sequence; malformed field entries without a record are dropped from
// both Fields and Order so the two stay in lockstep.
func newTypeDefinition(rec *parser.TypeRecord) *TypeDefinition {
	def := &TypeDefinition{
		Name:      rec.Name,
		Namespace: rec.Namespace,
		Fields:    make(map[string]FieldDescriptor, len(rec.Fields)),
		Order:     make([]string, 0, len(rec.Order)),
	}
	for _, fieldName := range rec.Order {
		raw := rec.Fields[fieldName]
		if raw == nil {
			continue
		}
		def.Fields[fieldName] = normalizeField(raw)
		def.Order = append(def.Order, fieldName)
	}
	return def
}

func normalizeField(raw *parser.FieldRecord) FieldDescriptor {
	return FieldDescriptor{
		Type:      raw.Type,
		Required:  raw.MinOccurs != "0",
		Array:     raw.MaxOccurs == "unbounded" || occursAboveOne(raw.MaxOccurs),
		MinOccurs: raw.MinOccurs,
		MaxOccurs: raw.MaxOccurs,
		Nillable:  raw.Nillable == "true",
	}
}

func occursAboveOne(maxOccurs string) bool {
	n, err := strconv.Atoi(maxOccurs)
	return err == nil && n > 1
}
