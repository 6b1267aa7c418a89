// Package wsdltools provides tools for working with WSDL 1.1 service
// description documents.
//
// The library consists of three primary packages:
//
//   - parser: Acquire and structurally parse WSDL documents, including
//     externally included or imported XML Schema documents
//   - query: Resolve and query operations, namespaces, and type schemas,
//     with deterministic type-name resolution and per-document caching
//   - generator: Generate Go type definitions from resolved schema types
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/wsdltools
//
// # Quick Start
//
// Parse a WSDL document and query a type:
//
//	import (
//		"github.com/erraggy/wsdltools/parser"
//		"github.com/erraggy/wsdltools/query"
//	)
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("service.wsdl"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := query.New(result)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if def := doc.TypeDefinition("CreateUserRequest"); def != nil {
//		for _, field := range def.Order {
//			fmt.Println(field, def.Fields[field].Type)
//		}
//	}
//
// Resolution misses are never errors: any query about a type or operation
// name that cannot be resolved returns nil, reserving errors for malformed
// input and invalid configuration (see the wsdlerrors package).
//
// # Command Line
//
// The wsdltools command provides parse, types, operations, generate, and mcp
// subcommands. See cmd/wsdltools for details.
package wsdltools
