package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	// Must not panic and With must return a usable logger.
	var l Logger = NopLogger{}
	l.Debug("msg", "k", "v")
	l.Info("msg")
	l.Warn("msg")
	l.Error("msg")
	l.With("k", "v").Debug("msg")
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler))

	l.Debug("resolving include", "location", "types.xsd")
	if !strings.Contains(buf.String(), "types.xsd") {
		t.Errorf("log output missing attr: %q", buf.String())
	}

	buf.Reset()
	l.With("doc", "service.wsdl").Info("parsed")
	out := buf.String()
	if !strings.Contains(out, "doc=service.wsdl") || !strings.Contains(out, "parsed") {
		t.Errorf("With attrs missing from output: %q", out)
	}
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	if NewSlogAdapter(nil) == nil {
		t.Fatal("NewSlogAdapter(nil) returned nil")
	}
}

func TestParserLogFallback(t *testing.T) {
	p := New()
	if _, ok := p.log().(NopLogger); !ok {
		t.Errorf("unconfigured parser should log to NopLogger, got %T", p.log())
	}
}
