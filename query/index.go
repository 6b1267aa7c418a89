package query

import "github.com/erraggy/wsdltools/parser"

// typeIndex is the namespace-keyed lookup table over the parser's raw type
// records. It is built at most once per Document by copying the parser's
// type maps, and is never mutated afterwards. The namespaces slice fixes
// the scan order for unqualified lookups so tie-breaking stays
// deterministic.
type typeIndex struct {
	namespaces []string
	types      map[string]map[string]*parser.TypeRecord
}

// buildTypeIndex copies the per-namespace type maps verbatim. No
// validation, no deduplication beyond what the parser already guarantees.
func buildTypeIndex(defs *parser.Definitions) *typeIndex {
	ix := &typeIndex{
		namespaces: append([]string(nil), defs.TypeNamespaceOrder...),
		types:      make(map[string]map[string]*parser.TypeRecord, len(defs.Types)),
	}
	for ns, byName := range defs.Types {
		copied := make(map[string]*parser.TypeRecord, len(byName))
		for name, rec := range byName {
			copied[name] = rec
		}
		ix.types[ns] = copied
	}
	return ix
}

// lookup returns the record for a local type name within one namespace, or
// nil when either is unknown.
func (ix *typeIndex) lookup(namespace, name string) *parser.TypeRecord {
	byName, ok := ix.types[namespace]
	if !ok {
		return nil
	}
	return byName[name]
}

// typeIndex returns the Document's index, building it on first access.
func (d *Document) typeIndex() *typeIndex {
	if d.index == nil {
		d.index = buildTypeIndex(d.defs)
	}
	return d.index
}
