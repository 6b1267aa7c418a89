// Package parser acquires and structurally parses WSDL 1.1 documents.
//
// The parser reads a document from a file path, URL, byte slice, or
// io.Reader, decodes the WSDL syntax and its embedded XML Schema sections,
// and produces a flat [Definitions] value: namespace prefix declarations,
// operations joined with their SOAP actions and message parts, and raw
// per-namespace type records. Externally included or imported schema
// documents are fetched and merged when a base path or URL is available.
//
// The parser performs no type resolution; that is the query package's job.
// Use [ParseWithOptions] with functional options, or construct a [Parser]
// directly for repeated parsing with shared configuration.
package parser
