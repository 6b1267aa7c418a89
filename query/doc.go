// Package query exposes a structured, queryable model of a parsed WSDL
// document and resolves type names referenced by operations into normalized
// field descriptions.
//
// A [Document] wraps one parser.ParseResult and answers questions about its
// operations, namespaces, and type schemas. The hard part is type
// resolution: a schema can define types with the same local name in several
// namespaces, reference types through namespace-qualified names, or
// reference types that only exist under a naming convention (a "Foo" field
// referring to a type actually named "FooType"). Resolution is
// deterministic, memoized per document, and tolerant of partial
// information: a name that cannot be resolved yields nil, never an error.
//
// All caches are populated lazily on first access and are never evicted or
// invalidated for the lifetime of the Document. A Document is not safe for
// concurrent use; confine each instance to one goroutine or guard it with
// your own synchronization.
package query
