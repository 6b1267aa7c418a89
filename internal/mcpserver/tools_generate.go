package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/wsdltools/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Spec        wsdlInput `json:"spec"                   jsonschema:"The WSDL document to generate code from"`
	PackageName string    `json:"package_name,omitempty" jsonschema:"Go package name for generated code (default: types)"`
	OutputDir   string    `json:"output_dir"             jsonschema:"Directory to write generated files to"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	Success              bool                `json:"success"`
	OutputDir            string              `json:"output_dir"`
	PackageName          string              `json:"package_name"`
	FileCount            int                 `json:"file_count"`
	Files                []generatedFileInfo `json:"files"`
	GeneratedTypes       int                 `json:"generated_types"`
	UnresolvedReferences []string            `json:"unresolved_references,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	g := generator.New()
	if input.PackageName != "" {
		g.PackageName = input.PackageName
	}

	result, err := g.GenerateFromDocument(doc)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:              !result.HasUnresolvedReferences(),
		OutputDir:            input.OutputDir,
		PackageName:          result.PackageName,
		FileCount:            len(result.Files),
		GeneratedTypes:       result.GeneratedTypes,
		UnresolvedReferences: result.UnresolvedReferences,
	}

	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}

	return nil, output, nil
}
