package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/erraggy/wsdltools/parser"
	"github.com/erraggy/wsdltools/query"
)

// defaultPackageName is used when no package name is configured.
const defaultPackageName = "types"

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "types.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating code from a WSDL document
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// PackageName is the Go package name used in generation
	PackageName string
	// SourcePath identifies the source document
	SourcePath string
	// GeneratedTypes is the count of struct types generated
	GeneratedTypes int
	// UnresolvedReferences lists declared type references that no schema
	// declaration satisfies; their fields render as any
	UnresolvedReferences []string
	// LoadTime is the time taken to parse the source document
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
}

// HasUnresolvedReferences returns true if any type reference could not be
// resolved against the document's schemas.
func (r *GenerateResult) HasUnresolvedReferences() bool {
	return len(r.UnresolvedReferences) > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles code generation from WSDL documents
type Generator struct {
	// PackageName is the Go package name for generated code.
	// If empty, defaults to "types".
	PackageName string

	// UsePointers uses pointer types for optional scalar fields.
	// Default: true (via New)
	UsePointers bool

	// UserAgent is the User-Agent string used when fetching URL sources.
	// If empty, the parser's default is used.
	UserAgent string
}

// New creates a Generator with default settings.
func New() *Generator {
	return &Generator{
		PackageName: defaultPackageName,
		UsePointers: true,
	}
}

// GenerateFromFile parses the WSDL document at the given file path or URL
// and generates Go types from it.
func (g *Generator) GenerateFromFile(path string) (*GenerateResult, error) {
	start := time.Now()
	opts := []parser.Option{parser.WithFilePath(path)}
	if g.UserAgent != "" {
		opts = append(opts, parser.WithUserAgent(g.UserAgent))
	}
	doc, err := query.Load(opts...)
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(start)

	result, err := g.GenerateFromDocument(doc)
	if err != nil {
		return nil, err
	}
	result.LoadTime = loadTime
	return result, nil
}

// GenerateFromDocument generates Go types from an already-loaded document.
// Generation starts at the input and output types of every operation and
// follows user-defined field references into dependent types. A document
// without operations yields structs for every declared type instead.
func (g *Generator) GenerateFromDocument(doc *query.Document) (*GenerateResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("generator: document cannot be nil")
	}
	start := time.Now()

	pkg := g.PackageName
	if pkg == "" {
		pkg = defaultPackageName
	}

	defs, goNames, unresolved := g.collectDefinitions(doc)

	src := g.renderTypesFile(pkg, doc, defs, goNames)
	formatted, err := formatAndFixImports("types.go", src)
	if err != nil {
		return nil, fmt.Errorf("generator: formatting generated code: %w", err)
	}

	return &GenerateResult{
		Files:                []GeneratedFile{{Name: "types.go", Content: formatted}},
		PackageName:          pkg,
		SourcePath:           doc.Result().SourcePath,
		GeneratedTypes:       len(defs),
		UnresolvedReferences: unresolved,
		GenerateTime:         time.Since(start),
	}, nil
}

// typeKey identifies a collected type by its declaring namespace and local
// name, so same-named types in different namespaces stay distinct.
type typeKey struct {
	namespace string
	name      string
}

// collectDefinitions gathers every type reachable from an operation input or
// output, following user-defined field references breadth-first. The result
// is sorted by type name (then namespace) so output is deterministic, and
// the returned name table maps each collected type to a unique Go type
// name: colliding local names get a numeric suffix.
func (g *Generator) collectDefinitions(doc *query.Document) ([]*query.TypeDefinition, map[typeKey]string, []string) {
	collected := make(map[typeKey]*query.TypeDefinition)
	var queue []*query.TypeDefinition
	unresolvedSet := make(map[string]bool)

	add := func(def *query.TypeDefinition) {
		if def == nil {
			return
		}
		key := typeKey{def.Namespace, def.Name}
		if _, ok := collected[key]; ok {
			return
		}
		collected[key] = def
		queue = append(queue, def)
	}

	ops := doc.Operations()
	if len(ops) > 0 {
		names := make([]string, 0, len(ops))
		for name := range ops {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			op := ops[name]
			if def := doc.OperationInputType(name); def != nil {
				add(def)
			} else if op.Input != "" {
				unresolvedSet[op.Input] = true
			}
			if def := doc.OperationOutputType(name); def != nil {
				add(def)
			} else if op.Output != "" {
				unresolvedSet[op.Output] = true
			}
		}
	} else {
		for _, qp := range doc.TypeNamespaces() {
			if len(qp.Path) == 1 {
				add(doc.TypeDefinitionIn(qp.Namespace, qp.Path[0]))
			}
		}
	}

	for len(queue) > 0 {
		def := queue[0]
		queue = queue[1:]
		for _, fieldName := range def.Order {
			tag, userDefined := referencedTag(doc, def.Fields[fieldName].Type)
			if !userDefined {
				continue
			}
			if dep := doc.TypeDefinition(tag); dep != nil {
				add(dep)
			} else {
				unresolvedSet[tag] = true
			}
		}
	}

	defs := make([]*query.TypeDefinition, 0, len(collected))
	for _, def := range collected {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Name != defs[j].Name {
			return defs[i].Name < defs[j].Name
		}
		return defs[i].Namespace < defs[j].Namespace
	})

	goNames := make(map[typeKey]string, len(defs))
	used := make(map[string]int, len(defs))
	for _, def := range defs {
		name := toTypeName(def.Name)
		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s%d", name, n)
		}
		goNames[typeKey{def.Namespace, def.Name}] = name
	}

	var unresolved []string
	for name := range unresolvedSet {
		unresolved = append(unresolved, name)
	}
	sort.Strings(unresolved)
	return defs, goNames, unresolved
}

// renderTypesFile renders all struct declarations into a single source file.
// Imports are intentionally omitted; formatAndFixImports adds the ones the
// rendered code needs.
func (g *Generator) renderTypesFile(pkg string, doc *query.Document, defs []*query.TypeDefinition, goNames map[typeKey]string) []byte {
	var buf strings.Builder
	buf.WriteString("// Code generated by wsdltools. DO NOT EDIT.\n")
	buf.WriteString("//\n")
	fmt.Fprintf(&buf, "// Source: %s\n", doc.Result().SourcePath)
	if svc := doc.ServiceName(); svc != "" {
		fmt.Fprintf(&buf, "// Service: %s\n", svc)
	}
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	for _, def := range defs {
		g.renderStruct(&buf, doc, def, goNames)
	}
	return []byte(buf.String())
}

// renderStruct renders one type definition as a Go struct declaration.
func (g *Generator) renderStruct(buf *strings.Builder, doc *query.Document, def *query.TypeDefinition, goNames map[typeKey]string) {
	goName := goNames[typeKey{def.Namespace, def.Name}]
	if goName == "" {
		goName = toTypeName(def.Name)
	}
	if def.Namespace != "" {
		fmt.Fprintf(buf, "// %s corresponds to the %s type in namespace %s.\n", goName, def.Name, def.Namespace)
	} else {
		fmt.Fprintf(buf, "// %s corresponds to the %s type.\n", goName, def.Name)
	}
	fmt.Fprintf(buf, "type %s struct {\n", goName)
	for _, fieldName := range def.Order {
		fd := def.Fields[fieldName]
		xmlTag := fieldName
		if !fd.Required {
			xmlTag += ",omitempty"
		}
		fmt.Fprintf(buf, "\t%s %s `xml:\"%s\"`\n", toFieldName(fieldName), g.fieldGoType(doc, fd, goNames), xmlTag)
	}
	buf.WriteString("}\n\n")
}

// fieldGoType maps a normalized field descriptor to its Go type expression.
func (g *Generator) fieldGoType(doc *query.Document, fd query.FieldDescriptor, goNames map[typeKey]string) string {
	base, isStruct := g.baseGoType(doc, fd.Type, goNames)
	switch {
	case fd.Array:
		return "[]" + base
	case isStruct:
		// Pointer indirection keeps self-referential types legal and makes
		// absent sub-messages distinguishable from empty ones.
		return "*" + base
	case g.UsePointers && !fd.Required && base != "[]byte" && base != "any":
		return "*" + base
	default:
		return base
	}
}

// baseGoType resolves a raw type reference to its Go element type. The
// second result is true when the type is a generated struct.
func (g *Generator) baseGoType(doc *query.Document, ref string, goNames map[typeKey]string) (string, bool) {
	tag, userDefined := referencedTag(doc, ref)
	if userDefined {
		if dep := doc.TypeDefinition(tag); dep != nil {
			if name, ok := goNames[typeKey{dep.Namespace, dep.Name}]; ok {
				return name, true
			}
			return toTypeName(dep.Name), true
		}
		return "any", false
	}
	if goType, ok := xsdTypeToGoType(tag); ok {
		return goType, false
	}
	return "any", false
}

// referencedTag splits a field type reference into its bare tag and reports
// whether it points at a user-defined type. An unprefixed reference that is
// not an XML Schema built-in belongs to the default namespace.
func referencedTag(doc *query.Document, ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if i := strings.Index(ref, ":"); i >= 0 {
		return ref[i+1:], doc.IsUserDefined(ref[:i])
	}
	if _, builtin := xsdTypeToGoType(ref); builtin {
		return ref, false
	}
	return ref, doc.IsUserDefined("")
}
