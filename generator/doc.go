// Package generator provides Go code generation from WSDL documents.
//
// The generator creates idiomatic Go model structs for the message types a
// service exchanges. It starts from the input and output types of every
// operation and follows user-defined type references into dependent types,
// so the generated file covers exactly the types a client of the service
// touches.
//
// # Quick Start
//
//	g := generator.New()
//	g.PackageName = "userservice"
//	result, err := g.GenerateFromFile("service.wsdl")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./generated"); err != nil {
//		log.Fatal(err)
//	}
//
// # Type Mapping
//
// XML Schema built-in types are mapped to Go types as follows:
//   - xsd:string and the string-derived types → string
//   - xsd:int → int32, xsd:long and the integer family → int64
//   - xsd:float → float32, xsd:double and xsd:decimal → float64
//   - xsd:boolean → bool
//   - xsd:dateTime → time.Time
//   - xsd:base64Binary and xsd:hexBinary → []byte
//
// References to user-defined types become pointers to their generated
// structs. Fields with maxOccurs above one become slices. Optional scalar
// fields use pointer types when UsePointers is enabled.
package generator
