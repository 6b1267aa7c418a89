package parser

const (
	// ElementFormDefaultUnqualified is the schema default: locally declared
	// elements need no namespace qualification.
	ElementFormDefaultUnqualified = "unqualified"

	// ElementFormDefaultQualified requires namespace qualification for
	// locally declared elements.
	ElementFormDefaultQualified = "qualified"
)

const (
	// MaxIncludeDepth is the maximum depth allowed for nested xsd:include
	// and xsd:import resolution. This prevents runaway recursion from
	// deeply nested (but non-circular) schema chains.
	MaxIncludeDepth = 20

	// MaxCachedDocuments is the maximum number of external schema documents
	// to load. This prevents memory exhaustion from documents with many
	// external references.
	MaxCachedDocuments = 100

	// MaxFileSize is the maximum size (in bytes) allowed for external
	// schema files. This prevents resource exhaustion from loading
	// arbitrarily large files. Set to 10MB which should be sufficient for
	// most WSDL documents.
	MaxFileSize = 10 * 1024 * 1024 // 10MB
)
