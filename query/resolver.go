package query

import (
	"strings"

	"github.com/erraggy/wsdltools/parser"
)

// TypeSuffix is the naming-convention suffix tried when a type name has no
// literal declaration: resolving "User" can land on a type named "UserType".
const TypeSuffix = "Type"

// Candidate priorities for unqualified lookups. Lower wins; within one
// priority the first candidate encountered in index scan order wins.
const (
	priorityContextMatch = 1 // literal match in the context namespace
	priorityAnyMatch     = 2 // literal match in any other namespace
	prioritySuffixMatch  = 3 // match for name + TypeSuffix in any namespace
)

// resolutionKey identifies one memoized resolution.
type resolutionKey struct {
	name      string
	contextNS string
}

type candidate struct {
	priority int
	record   *parser.TypeRecord
}

// resolveType finds the single best-matching raw type record for a type
// name, optionally namespace-qualified, with an optional context namespace.
// Results, including misses, are memoized per (name, contextNS) for the
// lifetime of the Document.
func (d *Document) resolveType(name, contextNS string) *parser.TypeRecord {
	key := resolutionKey{name: name, contextNS: contextNS}
	if rec, done := d.resolutions[key]; done {
		return rec
	}
	rec := d.lookupType(name, contextNS)
	d.resolutions[key] = rec
	return rec
}

func (d *Document) lookupType(name, contextNS string) *parser.TypeRecord {
	ix := d.typeIndex()

	// Qualified names bypass all precedence rules: resolve the prefix to a
	// namespace URI and look the local name up there. A qualified lookup
	// that misses never falls through to suffix matching.
	if prefix, local, qualified := splitPrefix(name); qualified {
		uri, known := d.defs.Namespaces[prefix]
		if !known {
			return nil
		}
		return ix.lookup(uri, local)
	}

	// Collect every candidate with a priority tag, then pick the minimum.
	// The suffix pass runs unconditionally: documents exist where both
	// "Foo" and "FooType" are declared, and the convention-based result
	// must remain reachable, just deprioritized.
	var candidates []candidate
	for _, ns := range ix.namespaces {
		if rec := ix.lookup(ns, name); rec != nil {
			priority := priorityAnyMatch
			if contextNS != "" && ns == contextNS {
				priority = priorityContextMatch
			}
			candidates = append(candidates, candidate{priority: priority, record: rec})
		}
	}
	suffixed := name + TypeSuffix
	for _, ns := range ix.namespaces {
		if rec := ix.lookup(ns, suffixed); rec != nil {
			candidates = append(candidates, candidate{priority: prioritySuffixMatch, record: rec})
		}
	}

	var best *candidate
	for i := range candidates {
		if best == nil || candidates[i].priority < best.priority {
			best = &candidates[i]
		}
	}
	if best == nil {
		return nil
	}
	return best.record
}

// splitPrefix splits a namespace-qualified name into prefix and local
// parts. The qualified result reports whether a separator was present.
func splitPrefix(name string) (prefix, local string, qualified bool) {
	i := strings.Index(name, ":")
	if i < 0 {
		return "", name, false
	}
	return name[:i], name[i+1:], true
}
