package parser

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/erraggy/wsdltools/wsdlerrors"
)

// schemaLoader fetches and merges externally included or imported schema
// documents. Relative schemaLocations resolve against the source document's
// directory (file sources) or URL (HTTP sources); when neither base is
// available, the reference is skipped with a warning and the types it would
// have contributed later resolve to absence.
type schemaLoader struct {
	defs   *Definitions
	parser *Parser

	// baseDir is the base directory for resolving relative file locations.
	// Empty when the source was a byte slice or reader.
	baseDir string
	// baseURL is the base URL for resolving relative locations when the
	// source document was fetched over HTTP.
	baseURL string

	// loaded tracks resolved locations to break include cycles and bound
	// the number of fetched documents.
	loaded map[string]bool

	warnings []string
}

func newSchemaLoader(defs *Definitions, p *Parser, baseDir, baseURL string) *schemaLoader {
	return &schemaLoader{
		defs:    defs,
		parser:  p,
		baseDir: baseDir,
		baseURL: baseURL,
		loaded:  make(map[string]bool),
	}
}

// resolveAll fetches every pending reference depth-first, merging each
// fetched schema into the definitions and following its own references.
func (l *schemaLoader) resolveAll(refs []pendingRef) error {
	for _, ref := range refs {
		if err := l.resolve(ref, l.baseDir, l.baseURL, 0); err != nil {
			return err
		}
	}
	return nil
}

func (l *schemaLoader) resolve(ref pendingRef, baseDir, baseURL string, depth int) error {
	if depth > l.parser.maxIncludeDepth() {
		return &wsdlerrors.ResourceLimitError{
			ResourceType: "include_depth",
			Limit:        int64(l.parser.maxIncludeDepth()),
			Actual:       int64(depth),
			Message:      "schema references too deeply nested",
		}
	}

	log := l.parser.log().With("ref_type", ref.RefType, "location", ref.Location)

	var (
		data         []byte
		childDir     string
		childURL     string
		resolvedName string
		err          error
	)
	switch {
	case isURL(ref.Location):
		data, resolvedName, err = l.fetch(ref.Location)
		childURL = ref.Location
	case baseURL != "":
		resolved, urlErr := resolveRelativeURL(baseURL, ref.Location)
		if urlErr != nil {
			return &wsdlerrors.ReferenceError{Location: ref.Location, RefType: ref.RefType, Cause: urlErr}
		}
		data, resolvedName, err = l.fetch(resolved)
		childURL = resolved
	case baseDir != "":
		data, resolvedName, err = l.readFile(baseDir, ref)
		if resolvedName != "" {
			childDir = filepath.Dir(resolvedName)
		}
	default:
		// No base path to resolve against. Record the miss and move on:
		// types declared only in this schema will resolve to absence.
		log.Warn("skipping schema reference: no base path available")
		l.warnings = append(l.warnings, fmt.Sprintf("cannot resolve %s %q: no base path available", ref.RefType, ref.Location))
		return nil
	}
	if err != nil {
		// Hard failures (traversal, limits) abort parsing; availability
		// problems degrade to a warning and an unresolvable schema.
		switch {
		case errors.Is(err, wsdlerrors.ErrPathTraversal):
			return err
		case errors.Is(err, wsdlerrors.ErrResourceLimit):
			return err
		default:
			log.Warn("skipping schema reference", "error", err)
			l.warnings = append(l.warnings, fmt.Sprintf("cannot resolve %s %q: %v", ref.RefType, ref.Location, err))
			return nil
		}
	}

	if l.loaded[resolvedName] {
		log.Debug("schema already loaded", "resolved", resolvedName)
		return nil
	}
	if len(l.loaded) >= l.parser.maxCachedDocuments() {
		return &wsdlerrors.ResourceLimitError{
			ResourceType: "cached_documents",
			Limit:        int64(l.parser.maxCachedDocuments()),
			Actual:       int64(len(l.loaded)),
			Message:      "too many external schema references",
		}
	}
	l.loaded[resolvedName] = true

	schema, err := decodeSchemaDocument(data)
	if err != nil {
		return &wsdlerrors.ReferenceError{Location: ref.Location, RefType: ref.RefType, Cause: err}
	}

	// Includes inherit the including schema's namespace when the fetched
	// schema declares none; imports fall back to their declared namespace.
	fallbackTNS := ref.ParentTNS
	if ref.RefType == "import" && ref.Namespace != "" {
		fallbackTNS = ref.Namespace
	}
	nested := l.defs.mergeSchema(schema, fallbackTNS)
	log.Debug("merged external schema", "target_namespace", fallbackTNS, "nested_refs", len(nested))

	for _, n := range nested {
		if err := l.resolve(n, childDir, childURL, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// readFile resolves a relative location against baseDir and reads it,
// rejecting path traversal outside the base directory.
func (l *schemaLoader) readFile(baseDir string, ref pendingRef) ([]byte, string, error) {
	filePath := ref.Location
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Clean(filepath.Join(baseDir, filePath))
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve schema path: %w", err)
	}

	// filepath.Rel detects traversal attempts in all cases, including
	// different volumes on Windows where it returns an error.
	relPath, err := filepath.Rel(absBase, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return nil, "", &wsdlerrors.ReferenceError{
			Location:        ref.Location,
			RefType:         ref.RefType,
			IsPathTraversal: true,
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read schema file %s: %w", filePath, err)
	}
	if int64(len(data)) > l.parser.maxFileSize() {
		return nil, "", &wsdlerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        l.parser.maxFileSize(),
			Actual:       int64(len(data)),
			Message:      "external schema file too large",
		}
	}
	return data, filePath, nil
}

// fetch retrieves a schema document over HTTP/HTTPS. Size enforcement
// happens inside fetchURL, so an oversized schema surfaces as a
// ResourceLimitError here too.
func (l *schemaLoader) fetch(rawURL string) ([]byte, string, error) {
	data, err := l.parser.fetchURL(rawURL)
	if err != nil {
		return nil, "", err
	}
	return data, rawURL, nil
}

// resolveRelativeURL resolves a relative schemaLocation against the URL of
// the document that referenced it.
func resolveRelativeURL(baseURL, location string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	base.Path = path.Join(path.Dir(base.Path), location)
	return base.String(), nil
}
