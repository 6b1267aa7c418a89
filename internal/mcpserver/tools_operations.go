package mcpserver

import (
	"context"
	"fmt"
	"sort"

	"github.com/erraggy/wsdltools/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type operationsInput struct {
	Spec wsdlInput `json:"spec"           jsonschema:"The WSDL document to inspect"`
	Name string    `json:"name,omitempty" jsonschema:"Return one operation with resolved input and output type definitions"`
}

type operationSummary struct {
	Name       string   `json:"name"`
	SOAPAction string   `json:"soap_action,omitempty"`
	Input      string   `json:"input,omitempty"`
	Output     string   `json:"output,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
}

type operationsOutput struct {
	Count      int                `json:"count"`
	Operations []operationSummary `json:"operations,omitempty"`
	Operation  *operationSummary  `json:"operation,omitempty"`
	InputType  *typeDefInfo       `json:"input_type,omitempty"`
	OutputType *typeDefInfo       `json:"output_type,omitempty"`
}

func handleOperations(_ context.Context, _ *mcp.CallToolRequest, input operationsInput) (*mcp.CallToolResult, operationsOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), operationsOutput{}, nil
	}

	if input.Name != "" {
		op := doc.Operation(input.Name)
		if op == nil {
			return errResult(fmt.Errorf("operation %q not found", input.Name)), operationsOutput{}, nil
		}
		summary := summarizeOperation(op)
		return nil, operationsOutput{
			Count:      1,
			Operation:  &summary,
			InputType:  newTypeDefInfo(doc.OperationInputType(input.Name)),
			OutputType: newTypeDefInfo(doc.OperationOutputType(input.Name)),
		}, nil
	}

	ops := doc.Operations()
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	output := operationsOutput{Count: len(names)}
	output.Operations = makeSlice[operationSummary](len(names))
	for _, name := range names {
		output.Operations = append(output.Operations, summarizeOperation(ops[name]))
	}
	return nil, output, nil
}

func summarizeOperation(op *parser.Operation) operationSummary {
	summary := operationSummary{
		Name:       op.Name,
		SOAPAction: op.SOAPAction,
		Input:      op.Input,
		Output:     op.Output,
	}
	summary.Parameters = makeSlice[string](len(op.Parameters))
	for _, param := range op.Parameters {
		summary.Parameters = append(summary.Parameters, param.Name)
	}
	return summary
}
