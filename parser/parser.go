package parser

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/wsdltools"
	"github.com/erraggy/wsdltools/wsdlerrors"
)

// Parser handles WSDL document acquisition and structural parsing.
type Parser struct {
	// ResolveIncludes determines whether externally included or imported
	// schema documents (xsd:include, xsd:import with a schemaLocation) are
	// fetched and merged. When disabled, or when no base path is available
	// to resolve a relative location, the affected types later resolve to
	// absence rather than failing the parse.
	ResolveIncludes bool
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to "wsdltools/<version>" if not set.
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with a 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger

	// Resource limits (0 means use default)

	// MaxIncludeDepth is the maximum nesting depth for schema references.
	// Default: 20
	MaxIncludeDepth int
	// MaxCachedDocuments is the maximum number of external schema documents
	// to load. Default: 100
	MaxCachedDocuments int
	// MaxFileSize is the maximum size in bytes for external schema files.
	// Default: 10MB
	MaxFileSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ResolveIncludes: true,
		UserAgent:       wsdltools.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxIncludeDepth() int {
	if p.MaxIncludeDepth > 0 {
		return p.MaxIncludeDepth
	}
	return MaxIncludeDepth
}

func (p *Parser) maxCachedDocuments() int {
	if p.MaxCachedDocuments > 0 {
		return p.MaxCachedDocuments
	}
	return MaxCachedDocuments
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return MaxFileSize
}

// ParseResult contains the structurally parsed WSDL document and metadata.
//
// Callers should treat ParseResult as read-only after parsing: the query
// package indexes and caches over Definitions for the lifetime of a
// document, and mutating it afterwards leads to stale resolution results.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// If the source was not a file path or URL, this is set to the name of
	// the parse method used ("ParseBytes.wsdl" or "ParseReader.wsdl").
	SourcePath string
	// Definitions is the flat structural view of the document.
	Definitions *Definitions
	// Warnings contains non-fatal issues, such as schema references that
	// could not be resolved because no base path was available.
	Warnings []string
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse parses a WSDL document from a file path or URL.
// For URLs (http:// or https://), the content is fetched and parsed, and
// relative schema locations resolve against the URL. For local files,
// relative schema locations resolve against the file's directory.
func (p *Parser) Parse(wsdlPath string) (*ParseResult, error) {
	var (
		data     []byte
		err      error
		baseDir  string
		baseURL  string
		loadTime time.Duration
	)

	loadStart := time.Now()
	if isURL(wsdlPath) {
		data, err = p.fetchURL(wsdlPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, err
		}
		baseURL = wsdlPath
	} else {
		data, err = os.ReadFile(wsdlPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		if int64(len(data)) > p.maxFileSize() {
			return nil, &wsdlerrors.ResourceLimitError{
				ResourceType: "file_size",
				Limit:        p.maxFileSize(),
				Actual:       int64(len(data)),
				Message:      "document too large",
			}
		}
		baseDir = filepath.Dir(wsdlPath)
	}

	res, err := p.parseBytesWithBase(data, baseDir, baseURL)
	if err != nil {
		return nil, err
	}
	res.SourcePath = wsdlPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	return res, nil
}

// ParseReader parses a WSDL document from an io.Reader.
// There is no base path, so relative schema locations cannot be resolved;
// affected types resolve to absence and a warning is recorded.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader.wsdl"
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a WSDL document from a byte slice.
// For relative external schema references to work, use Parse() with a file
// path or URL instead.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytesWithBase(data, "", "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes.wsdl"
	res.SourceSize = int64(len(data))
	return res, nil
}

// parseBytesWithBase decodes the document and resolves external schema
// references relative to the given bases.
func (p *Parser) parseBytesWithBase(data []byte, baseDir, baseURL string) (*ParseResult, error) {
	xdefs, err := decodeDefinitions(data)
	if err != nil {
		return nil, err
	}
	if err := validateDefinitions(xdefs); err != nil {
		return nil, err
	}

	defs, refs := buildDefinitions(xdefs)
	p.log().Debug("decoded WSDL definitions",
		"target_namespace", defs.TargetNamespace,
		"operations", len(defs.Operations),
		"type_namespaces", len(defs.TypeNamespaceOrder),
		"pending_refs", len(refs))

	result := &ParseResult{Definitions: defs}
	if len(refs) > 0 && p.ResolveIncludes {
		loader := newSchemaLoader(defs, p, baseDir, baseURL)
		if err := loader.resolveAll(refs); err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, loader.warnings...)
	}
	return result, nil
}

// fetchURL retrieves a document over HTTP/HTTPS with the configured client.
func (p *Parser) fetchURL(rawURL string) ([]byte, error) {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid URL %s: %w", rawURL, err)
	}
	ua := p.UserAgent
	if ua == "" {
		ua = wsdltools.UserAgent()
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser: failed to fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	// Read one byte past the limit so oversized responses are detectable.
	data, err := io.ReadAll(io.LimitReader(resp.Body, p.maxFileSize()+1))
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read response from %s: %w", rawURL, err)
	}
	if int64(len(data)) > p.maxFileSize() {
		return nil, &wsdlerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        p.maxFileSize(),
			Actual:       int64(len(data)),
			Message:      "fetched document too large",
		}
	}
	return data, nil
}

// isURL reports whether the given path is an HTTP or HTTPS URL.
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
