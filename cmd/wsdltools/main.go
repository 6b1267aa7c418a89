package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/erraggy/wsdltools"
	"github.com/erraggy/wsdltools/generator"
	"github.com/erraggy/wsdltools/internal/mcpserver"
	"github.com/erraggy/wsdltools/parser"
	"github.com/erraggy/wsdltools/query"
	"go.yaml.in/yaml/v4"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("wsdltools v%s\n", wsdltools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		if err := handleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "operations":
		if err := handleOperations(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "types":
		if err := handleTypes(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or the empty string when nothing is close enough.
func suggestCommand(input string) string {
	commands := []string{"parse", "operations", "types", "generate", "mcp", "version", "help"}

	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// parseFlags contains flags for the parse command
type parseFlags struct {
	noIncludes bool
	userAgent  string
}

func setupParseFlags() (*flag.FlagSet, *parseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &parseFlags{}

	fs.BoolVar(&flags.noIncludes, "no-includes", false, "don't fetch externally included or imported schemas")
	fs.StringVar(&flags.userAgent, "user-agent", "", "User-Agent header for URL sources")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: wsdltools parse [flags] <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "Parse and summarize a WSDL document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  wsdltools parse service.wsdl\n")
		_, _ = fmt.Fprintf(output, "  wsdltools parse --no-includes service.wsdl\n")
		_, _ = fmt.Fprintf(output, "  wsdltools parse https://example.com/service?wsdl\n")
	}

	return fs, flags
}

func handleParse(args []string) error {
	fs, flags := setupParseFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or URL")
	}

	doc, err := loadDocument(fs.Arg(0), flags.noIncludes, flags.userAgent)
	if err != nil {
		return err
	}

	result := doc.Result()
	defs := result.Definitions

	fmt.Printf("WSDL Document Parser\n")
	fmt.Printf("====================\n\n")
	fmt.Printf("wsdltools version: %s\n", wsdltools.Version())
	fmt.Printf("Document: %s\n", result.SourcePath)
	fmt.Printf("Service: %s\n", doc.ServiceName())
	fmt.Printf("Endpoint: %s\n", doc.Endpoint())
	fmt.Printf("Target Namespace: %s\n", doc.TargetNamespace())
	fmt.Printf("Element Form Default: %s\n", doc.ElementFormDefault())
	fmt.Printf("Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	fmt.Printf("Load Time: %v\n\n", result.LoadTime)

	typeCount := 0
	for _, byName := range defs.Types {
		typeCount += len(byName)
	}
	fmt.Printf("Operations: %d\n", len(defs.Operations))
	fmt.Printf("Types: %d\n", typeCount)
	fmt.Printf("Schema Namespaces: %d\n\n", len(defs.TypeNamespaceOrder))

	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
		fmt.Println()
	}

	fmt.Printf("Parsing completed successfully!\n")
	return nil
}

// operationsFlags contains flags for the operations command
type operationsFlags struct {
	name       string
	format     string
	noIncludes bool
}

func setupOperationsFlags() (*flag.FlagSet, *operationsFlags) {
	fs := flag.NewFlagSet("operations", flag.ContinueOnError)
	flags := &operationsFlags{}

	fs.StringVar(&flags.name, "name", "", "show one operation with resolved input and output types")
	fs.StringVar(&flags.format, "format", "text", "output format (text, json, yaml)")
	fs.BoolVar(&flags.noIncludes, "no-includes", false, "don't fetch externally included or imported schemas")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: wsdltools operations [flags] <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "List the operations a WSDL document declares.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  wsdltools operations service.wsdl\n")
		_, _ = fmt.Fprintf(output, "  wsdltools operations --name CreateUser service.wsdl\n")
		_, _ = fmt.Fprintf(output, "  wsdltools operations --format json service.wsdl\n")
	}

	return fs, flags
}

// operationReport is the structured output of the operations command.
type operationReport struct {
	Name       string      `json:"name"                  yaml:"name"`
	SOAPAction string      `json:"soap_action,omitempty" yaml:"soap_action,omitempty"`
	Input      string      `json:"input,omitempty"       yaml:"input,omitempty"`
	Output     string      `json:"output,omitempty"      yaml:"output,omitempty"`
	Parameters []string    `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
	InputType  *typeReport `json:"input_type,omitempty"  yaml:"input_type,omitempty"`
	OutputType *typeReport `json:"output_type,omitempty" yaml:"output_type,omitempty"`
}

func handleOperations(args []string) error {
	fs, flags := setupOperationsFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("operations command requires exactly one file path or URL")
	}

	doc, err := loadDocument(fs.Arg(0), flags.noIncludes, "")
	if err != nil {
		return err
	}

	var reports []operationReport
	if flags.name != "" {
		op := doc.Operation(flags.name)
		if op == nil {
			return fmt.Errorf("operation %q not found", flags.name)
		}
		report := newOperationReport(op)
		report.InputType = newTypeReport(doc.OperationInputType(flags.name))
		report.OutputType = newTypeReport(doc.OperationOutputType(flags.name))
		reports = append(reports, report)
	} else {
		ops := doc.Operations()
		names := make([]string, 0, len(ops))
		for name := range ops {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			reports = append(reports, newOperationReport(ops[name]))
		}
	}

	if flags.format != "text" {
		return writeStructured(reports, flags.format)
	}

	fmt.Printf("Operations (%d):\n", len(reports))
	for _, report := range reports {
		fmt.Printf("  %s\n", report.Name)
		if report.SOAPAction != "" {
			fmt.Printf("    SOAP Action: %s\n", report.SOAPAction)
		}
		if report.Input != "" {
			fmt.Printf("    Input: %s\n", report.Input)
		}
		if report.Output != "" {
			fmt.Printf("    Output: %s\n", report.Output)
		}
		if report.InputType != nil {
			fmt.Printf("    Input Fields:\n")
			printTypeFields(report.InputType)
		}
		if report.OutputType != nil {
			fmt.Printf("    Output Fields:\n")
			printTypeFields(report.OutputType)
		}
	}
	return nil
}

func newOperationReport(op *parser.Operation) operationReport {
	report := operationReport{
		Name:       op.Name,
		SOAPAction: op.SOAPAction,
		Input:      op.Input,
		Output:     op.Output,
	}
	for _, param := range op.Parameters {
		report.Parameters = append(report.Parameters, param.Name)
	}
	return report
}

// typesFlags contains flags for the types command
type typesFlags struct {
	name       string
	format     string
	noIncludes bool
}

func setupTypesFlags() (*flag.FlagSet, *typesFlags) {
	fs := flag.NewFlagSet("types", flag.ContinueOnError)
	flags := &typesFlags{}

	fs.StringVar(&flags.name, "name", "", "resolve one type and show its definition")
	fs.StringVar(&flags.format, "format", "text", "output format (text, json, yaml)")
	fs.BoolVar(&flags.noIncludes, "no-includes", false, "don't fetch externally included or imported schemas")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: wsdltools types [flags] <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "List the schema types a WSDL document declares.\n\n")
		_, _ = fmt.Fprintf(output, "Type names passed to --name may be namespace-qualified (ns1:Address)\n")
		_, _ = fmt.Fprintf(output, "or bare; bare names also match declarations carrying a Type suffix.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  wsdltools types service.wsdl\n")
		_, _ = fmt.Fprintf(output, "  wsdltools types --name User service.wsdl\n")
		_, _ = fmt.Fprintf(output, "  wsdltools types --format yaml service.wsdl\n")
	}

	return fs, flags
}

// typeReport is the structured output of one resolved type definition.
type typeReport struct {
	Name      string            `json:"name"                yaml:"name"`
	Namespace string            `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Fields    []typeFieldReport `json:"fields,omitempty"    yaml:"fields,omitempty"`
}

type typeFieldReport struct {
	Name     string `json:"name"               yaml:"name"`
	Type     string `json:"type"               yaml:"type"`
	Required bool   `json:"required"           yaml:"required"`
	Array    bool   `json:"array,omitempty"    yaml:"array,omitempty"`
	Nillable bool   `json:"nillable,omitempty" yaml:"nillable,omitempty"`
}

func newTypeReport(def *query.TypeDefinition) *typeReport {
	if def == nil {
		return nil
	}
	report := &typeReport{
		Name:      def.Name,
		Namespace: def.Namespace,
	}
	for _, fieldName := range def.Order {
		fd := def.Fields[fieldName]
		report.Fields = append(report.Fields, typeFieldReport{
			Name:     fieldName,
			Type:     fd.Type,
			Required: fd.Required,
			Array:    fd.Array,
			Nillable: fd.Nillable,
		})
	}
	return report
}

func handleTypes(args []string) error {
	fs, flags := setupTypesFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("types command requires exactly one file path or URL")
	}

	doc, err := loadDocument(fs.Arg(0), flags.noIncludes, "")
	if err != nil {
		return err
	}

	if flags.name != "" {
		def := doc.TypeDefinition(flags.name)
		if def == nil {
			return fmt.Errorf("type %q not found", flags.name)
		}
		report := newTypeReport(def)
		if flags.format != "text" {
			return writeStructured(report, flags.format)
		}
		fmt.Printf("%s (namespace %s)\n", report.Name, report.Namespace)
		printTypeFields(report)
		return nil
	}

	var reports []typeReport
	for _, qp := range doc.TypeNamespaces() {
		if len(qp.Path) != 1 {
			continue
		}
		reports = append(reports, typeReport{Name: qp.Path[0], Namespace: qp.Namespace})
	}

	if flags.format != "text" {
		return writeStructured(reports, flags.format)
	}

	fmt.Printf("Types (%d):\n", len(reports))
	for _, report := range reports {
		fmt.Printf("  %s  (%s)\n", report.Name, report.Namespace)
	}
	return nil
}

func printTypeFields(report *typeReport) {
	for _, field := range report.Fields {
		line := fmt.Sprintf("      %s: %s", field.Name, field.Type)
		if !field.Required {
			line += " (optional)"
		}
		if field.Array {
			line += " (array)"
		}
		if field.Nillable {
			line += " (nillable)"
		}
		fmt.Println(line)
	}
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	output      string
	packageName string
	noPointers  bool
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.output, "o", "", "output directory (required)")
	fs.StringVar(&flags.output, "output", "", "output directory (required)")
	fs.StringVar(&flags.packageName, "package", "", "Go package name for generated code (default: types)")
	fs.BoolVar(&flags.noPointers, "no-pointers", false, "use value types for optional scalar fields")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: wsdltools generate [flags] <file|url>\n\n")
		_, _ = fmt.Fprintf(output, "Generate Go type definitions from a WSDL document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  wsdltools generate -o ./generated service.wsdl\n")
		_, _ = fmt.Fprintf(output, "  wsdltools generate -o ./generated --package userservice service.wsdl\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or URL")
	}

	if flags.output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}

	g := generator.New()
	if flags.packageName != "" {
		g.PackageName = flags.packageName
	}
	g.UsePointers = !flags.noPointers

	result, err := g.GenerateFromFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := result.WriteFiles(flags.output); err != nil {
		return fmt.Errorf("writing generated files: %w", err)
	}

	fmt.Printf("WSDL Code Generator\n")
	fmt.Printf("===================\n\n")
	fmt.Printf("wsdltools version: %s\n", wsdltools.Version())
	fmt.Printf("Document: %s\n", result.SourcePath)
	fmt.Printf("Package: %s\n", result.PackageName)
	fmt.Printf("Output: %s\n", flags.output)
	fmt.Printf("Generated Types: %d\n", result.GeneratedTypes)
	fmt.Printf("Load Time: %v\n", result.LoadTime)
	fmt.Printf("Generate Time: %v\n\n", result.GenerateTime)

	if result.HasUnresolvedReferences() {
		fmt.Printf("Unresolved type references (%d):\n", len(result.UnresolvedReferences))
		for _, name := range result.UnresolvedReferences {
			fmt.Printf("  - %s\n", name)
		}
		fmt.Println()
	}

	fmt.Printf("Generation completed successfully!\n")
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// loadDocument parses a WSDL file or URL and wraps it in a query document.
func loadDocument(path string, noIncludes bool, userAgent string) (*query.Document, error) {
	opts := []parser.Option{
		parser.WithFilePath(path),
		parser.WithResolveIncludes(!noIncludes),
	}
	if userAgent != "" {
		opts = append(opts, parser.WithUserAgent(userAgent))
	}
	doc, err := query.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// writeStructured marshals v to stdout in the requested format.
func writeStructured(v any, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown format %q (expected text, json, or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func printUsage() {
	fmt.Println(`wsdltools - WSDL Service Description Tools

Usage:
  wsdltools <command> [options]

Commands:
  parse       Parse and summarize a WSDL document
  operations  List operations with SOAP actions and message types
  types       List schema types or resolve one type definition
  generate    Generate Go type definitions from a WSDL document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  wsdltools parse service.wsdl
  wsdltools operations --name CreateUser service.wsdl
  wsdltools types --name User --format yaml service.wsdl
  wsdltools generate -o ./generated service.wsdl
  wsdltools parse https://example.com/service?wsdl

Run 'wsdltools <command> --help' for more information on a command.`)
}
