package wsdlerrors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseError(t *testing.T) {
	err := &ParseError{
		Path:    "service.wsdl",
		Message: "unexpected element",
		Cause:   errors.New("xml: syntax error"),
	}

	if !errors.Is(err, ErrParse) {
		t.Error("ParseError should match ErrParse")
	}
	if errors.Is(err, ErrReference) {
		t.Error("ParseError should not match ErrReference")
	}

	msg := err.Error()
	for _, want := range []string{"parse error", "service.wsdl", "unexpected element", "syntax error"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want substring %q", msg, want)
		}
	}

	var target *ParseError
	wrapped := fmt.Errorf("parser: %w", err)
	if !errors.As(wrapped, &target) {
		t.Error("errors.As should find ParseError through wrapping")
	}
}

func TestReferenceError(t *testing.T) {
	err := &ReferenceError{
		Location: "types.xsd",
		RefType:  "import",
	}
	if !errors.Is(err, ErrReference) {
		t.Error("ReferenceError should match ErrReference")
	}
	if errors.Is(err, ErrPathTraversal) {
		t.Error("non-traversal ReferenceError should not match ErrPathTraversal")
	}
	if !strings.Contains(err.Error(), "types.xsd") {
		t.Errorf("Error() = %q, want location", err.Error())
	}
}

func TestReferenceError_PathTraversal(t *testing.T) {
	err := &ReferenceError{
		Location:        "../../etc/passwd",
		RefType:         "include",
		IsPathTraversal: true,
	}
	if !errors.Is(err, ErrReference) {
		t.Error("traversal ReferenceError should still match ErrReference")
	}
	if !errors.Is(err, ErrPathTraversal) {
		t.Error("traversal ReferenceError should match ErrPathTraversal")
	}
	if !strings.Contains(err.Error(), "path traversal detected") {
		t.Errorf("Error() = %q, want traversal message", err.Error())
	}
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{
		ResourceType: "file_size",
		Limit:        1024,
		Actual:       4096,
		Message:      "schema too large",
	}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("ResourceLimitError should match ErrResourceLimit")
	}
	msg := err.Error()
	for _, want := range []string{"file_size", "limit: 1024", "actual: 4096", "schema too large"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want substring %q", msg, want)
		}
	}
	if err.Unwrap() != nil {
		t.Error("ResourceLimitError.Unwrap should return nil")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Option:  "elementFormDefault",
		Value:   "sometimes",
		Message: "must be unqualified or qualified",
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
	msg := err.Error()
	for _, want := range []string{"elementFormDefault", "sometimes", "must be unqualified or qualified"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want substring %q", msg, want)
		}
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ConfigError{Option: "source", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}
