package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	cases := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{name: "trace", level: "trace", expected: logrus.TraceLevel},
		{name: "debug", level: "debug", expected: logrus.DebugLevel},
		{name: "info", level: "info", expected: logrus.InfoLevel},
		{name: "warn", level: "warn", expected: logrus.WarnLevel},
		{name: "warning_alias", level: "WARNING", expected: logrus.WarnLevel},
		{name: "error", level: "error", expected: logrus.ErrorLevel},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			SetLevel(tt.level)
			if defaultLogger.GetLevel() != tt.expected {
				t.Errorf("SetLevel(%q) got level %s, expected %s", tt.level, defaultLogger.GetLevel(), tt.expected)
			}
		})
	}

	t.Run("unknown_keeps_level", func(t *testing.T) {
		SetLevel("debug")
		SetLevel("no-such-level")
		if defaultLogger.GetLevel() != logrus.DebugLevel {
			t.Errorf("unknown level should not change logger level, got %s", defaultLogger.GetLevel())
		}
	})
}

func TestSetOutputs(t *testing.T) {
	currentOut := defaultLogger.Out
	defer defaultLogger.SetOutput(currentOut)

	t.Run("default", func(t *testing.T) {
		SetOutputs(nil, 0, 0)
		if defaultLogger.Out != currentOut {
			t.Error("Logger output should not change by default")
		}
	})

	t.Run("stdout", func(t *testing.T) {
		SetOutputs([]string{"-"}, 0, 0)
		if defaultLogger.Out != os.Stdout {
			t.Error("Logger output should be stdout")
		}
	})

	t.Run("stderr", func(t *testing.T) {
		SetOutputs([]string{"="}, 0, 0)
		if defaultLogger.Out != os.Stderr {
			t.Error("Logger output should be stderr")
		}
	})

	t.Run("write_two_files", func(t *testing.T) {
		logDir := t.TempDir()
		log1 := filepath.Join(logDir, "file1.log")
		log2 := filepath.Join(logDir, "file2.log")
		SetOutputs([]string{log1, log2}, 0, 0)
		const content = "hello log"
		_, err := io.WriteString(defaultLogger.Out, content)
		if err != nil {
			t.Fatal("Failed to write to log output with two outputs:", err)
		}
		for _, name := range []string{log1, log2} {
			data, err := os.ReadFile(name)
			if err != nil {
				t.Fatalf("Failed to read log file %s: %s", name, err)
			}
			if string(data) != content {
				t.Errorf("Log file %s content %q, expected %q", name, data, content)
			}
		}
	})
}

func TestDefault(t *testing.T) {
	log := Default()
	if log == nil {
		t.Fatal("Default() returned nil")
	}
	// field chaining should not panic and should keep returning a usable logger
	log.WithField("k", "v").WithFields(Fields{"a": 1, "b": 2}).Debug("chained fields")
}
