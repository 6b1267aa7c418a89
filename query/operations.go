package query

import "github.com/erraggy/wsdltools/parser"

// Operation returns the named operation as the parser reported it, or nil
// when the document declares no such operation.
func (d *Document) Operation(name string) *parser.Operation {
	return d.defs.Operations[name]
}

// Operations returns the operations map as the parser reported it; treat
// it as read-only.
func (d *Document) Operations() map[string]*parser.Operation {
	return d.defs.Operations
}

// OperationInputType resolves the declared input type of an operation into
// its normalized definition. The literal declared name is tried first, then
// the name with the "Type" suffix appended. Returns nil for an unknown
// operation or an unresolvable type; never an error.
func (d *Document) OperationInputType(operation string) *TypeDefinition {
	op := d.defs.Operations[operation]
	if op == nil {
		return nil
	}
	return d.bindType(op.Input)
}

// OperationOutputType resolves the declared output type of an operation
// into its normalized definition, with the same fallback and miss behavior
// as OperationInputType.
func (d *Document) OperationOutputType(operation string) *TypeDefinition {
	op := d.defs.Operations[operation]
	if op == nil {
		return nil
	}
	return d.bindType(op.Output)
}

func (d *Document) bindType(declared string) *TypeDefinition {
	if declared == "" {
		return nil
	}
	if def := d.TypeDefinition(declared); def != nil {
		return def
	}
	return d.TypeDefinition(declared + TypeSuffix)
}

// OperationInputParameters returns the operation's input message part names
// in declared order, or nil for an unknown operation.
func (d *Document) OperationInputParameters(operation string) []string {
	op := d.defs.Operations[operation]
	if op == nil {
		return nil
	}
	names := make([]string, 0, len(op.Parameters))
	for _, param := range op.Parameters {
		names = append(names, param.Name)
	}
	return names
}

// SOAPAction returns the soapAction of an operation. The ok result is
// false when the document declares no such operation.
func (d *Document) SOAPAction(operation string) (action string, ok bool) {
	op := d.defs.Operations[operation]
	if op == nil {
		return "", false
	}
	return op.SOAPAction, true
}
