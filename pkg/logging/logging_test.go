package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			t.Setenv(EnvLogFile, "")

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "reskin", "reskin.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	t.Setenv(EnvLogFile, "")

	got := filepath.ToSlash(getLogFilePath())
	if !strings.Contains(got, "/custom/state/reskin/reskin.log") {
		t.Errorf("getLogFilePath() = %s", got)
	}
}

func TestGetLogFilePath_Override(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "run.log")
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	t.Setenv(EnvLogFile, logPath)

	if got := getLogFilePath(); got != logPath {
		t.Errorf("getLogFilePath() = %s, want %s", got, logPath)
	}

	SetupLogger(0)
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file was not created at %s: %v", logPath, err)
	}
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand("gsettings", []string{"set", "org.gnome.desktop.interface"})

	output := buf.String()
	for _, want := range []string{"gsettings", "org.gnome.desktop.interface", "Executing command"} {
		if !strings.Contains(output, want) {
			t.Errorf("LogCommand output %q missing %q", output, want)
		}
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "install")
	done()

	output := buf.String()
	if !strings.Contains(output, "Operation started") || !strings.Contains(output, "Operation completed") {
		t.Errorf("unexpected output %q", output)
	}
}
