package logger_test

import (
	"strings"
	"testing"

	"go.trai.ch/zerr"

	"github.com/riggbuild/rigg/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf strings.Builder
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("resolving packages")

	output := buf.String()
	if !strings.Contains(output, "level=INFO") {
		t.Errorf("expected INFO level in output, got %q", output)
	}
	if !strings.Contains(output, "resolving packages") {
		t.Errorf("expected message in output, got %q", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf strings.Builder
	log := logger.New()
	log.SetOutput(&buf)

	log.Warn("package directory empty")

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected WARN level in output, got %q", buf.String())
	}
}

func TestLogger_Error(t *testing.T) {
	var buf strings.Builder
	log := logger.New()
	log.SetOutput(&buf)

	log.Error(zerr.New("installation directory not found"))

	output := buf.String()
	if !strings.Contains(output, "level=ERROR") {
		t.Errorf("expected ERROR level in output, got %q", output)
	}
	if !strings.Contains(output, "installation directory not found") {
		t.Errorf("expected error message in output, got %q", output)
	}
}
