package query

import (
	"sort"
	"strings"
)

// standardNamespacePrefixes are URI prefixes of standards-body namespaces
// that are filtered out of user-facing type listings: the W3C namespaces
// (XML Schema among them) and the legacy SOAP/WSDL namespaces.
var standardNamespacePrefixes = []string{
	"http://www.w3.org/",
	"http://schemas.xmlsoap.org/",
}

// IsUserDefined reports whether a namespace prefix refers to a
// user-defined namespace rather than a standards-body one.
//
// This is a heuristic string-prefix match, not a registry: a standards
// namespace not covered by the known patterns is misreported as
// user-defined.
func (d *Document) IsUserDefined(prefix string) bool {
	uri := d.defs.Namespaces[prefix]
	for _, std := range standardNamespacePrefixes {
		if strings.HasPrefix(uri, std) {
			return false
		}
	}
	return true
}

// QualifiedPath pairs a type or field path with its owning namespace URI.
// Path is either [type] or [type, field].
type QualifiedPath struct {
	Path      []string
	Namespace string
}

// TypeReference pairs a field path with the bare tag of the user-defined
// type it references.
type TypeReference struct {
	Path []string
	Type string
}

// TypeNamespaces returns every declared type and every field, each paired
// with its owning namespace URI, for reporting and codegen consumers.
// Namespaces appear in schema declaration order, types alphabetically
// within a namespace, and fields in declared sequence.
func (d *Document) TypeNamespaces() []QualifiedPath {
	d.buildReports()
	return d.typeNamespaces
}

// TypeReferences returns every field whose referenced type is user-defined
// (per IsUserDefined on the reference's namespace prefix), paired with the
// bare referenced tag. Consumers that need to recurse into dependent types
// resolve the tags with TypeDefinition.
func (d *Document) TypeReferences() []TypeReference {
	d.buildReports()
	return d.typeReferences
}

// buildReports walks the index once and memoizes both listings.
func (d *Document) buildReports() {
	if d.reportsBuilt {
		return
	}
	d.reportsBuilt = true

	ix := d.typeIndex()
	for _, ns := range ix.namespaces {
		byName := ix.types[ns]
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, typeName := range names {
			rec := byName[typeName]
			d.typeNamespaces = append(d.typeNamespaces, QualifiedPath{
				Path:      []string{typeName},
				Namespace: ns,
			})
			for _, fieldName := range rec.Order {
				d.typeNamespaces = append(d.typeNamespaces, QualifiedPath{
					Path:      []string{typeName, fieldName},
					Namespace: ns,
				})

				field := rec.Fields[fieldName]
				if field == nil || field.Type == "" {
					continue
				}
				prefix, tag, qualified := splitPrefix(field.Type)
				if !qualified {
					// Unprefixed references use the default namespace.
					prefix = ""
				}
				if d.IsUserDefined(prefix) {
					d.typeReferences = append(d.typeReferences, TypeReference{
						Path: []string{typeName, fieldName},
						Type: tag,
					})
				}
			}
		}
	}
}
