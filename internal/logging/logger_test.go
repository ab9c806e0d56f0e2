package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Run("String creates field with key and string value", func(t *testing.T) {
		f := String("airfoil", "naca2412")
		if f.Key != "airfoil" || f.Value != "naca2412" {
			t.Errorf("String() = %+v", f)
		}
	})

	t.Run("Int creates field with key and int value", func(t *testing.T) {
		f := Int("cases", 90)
		if f.Key != "cases" || f.Value != 90 {
			t.Errorf("Int() = %+v", f)
		}
	})

	t.Run("Uint64 creates field with key and uint64 value", func(t *testing.T) {
		f := Uint64("bytes", 12345)
		if f.Key != "bytes" || f.Value != uint64(12345) {
			t.Errorf("Uint64() = %+v", f)
		}
	})

	t.Run("Float64 creates field with key and float64 value", func(t *testing.T) {
		f := Float64("alpha", -10.0)
		if f.Key != "alpha" || f.Value != -10.0 {
			t.Errorf("Float64() = %+v", f)
		}
	})

	t.Run("Duration creates field with key and duration value", func(t *testing.T) {
		f := Duration("elapsed", 2*time.Second)
		if f.Key != "elapsed" || f.Value != 2*time.Second {
			t.Errorf("Duration() = %+v", f)
		}
	})

	t.Run("Err creates field with error key", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" || f.Value != testErr {
			t.Errorf("Err() = %+v", f)
		}
	})
}

// TestNewZerologAdapter tests the ZerologAdapter constructor.
func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

// TestNewLogger tests the component-tagged logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "sweep")

	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, "sweep") {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestNewDefaultLogger tests the default logger constructor.
func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

// TestLoggerLevels verifies each level emits and carries fields.
func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Debug("debug msg", String("k", "v"))
	logger.Info("info msg", Int("n", 1))
	logger.Warn("warn msg", Float64("f", 2.5))
	logger.Error("error msg", Err(errors.New("boom")))

	output := buf.String()
	for _, want := range []string{"debug msg", "info msg", "warn msg", "error msg", "boom", `"n":1`, `"f":2.5`} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

// TestNop verifies the no-op logger does not panic or emit.
func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info("discarded", String("k", "v"))
	logger.Error("discarded too")
}
