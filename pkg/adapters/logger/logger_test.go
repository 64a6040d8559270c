package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/user/hairline/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelInfo, &out, &errOut)

	log.Debug("hidden")
	log.Info("Restarting pipeline")
	log.Error("Failed to restart pipeline: %s", "boom")

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out.String(), "Restarting pipeline") {
		t.Errorf("expected info on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("expected error on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &out)

	log.WithComponent("flip").Info("Restarting pipeline")

	if !strings.HasPrefix(out.String(), "[flip] ") {
		t.Errorf("expected component prefix, got %q", out.String())
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewConsoleWriter(ports.LevelQuiet, &out, &out)

	log.Error("Failed to restart pipeline: %s", "boom")

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestLogrusLogger_JSON(t *testing.T) {
	var out bytes.Buffer
	log := NewLogrus(ports.LevelDebug, &out)

	log.WithComponent("videoflip0").Warn("Failed to stop element: %s", "busy")

	var entry map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON entry, got %q: %v", out.String(), err)
	}
	if entry["msg"] != "Failed to stop element: busy" {
		t.Errorf("unexpected msg %v", entry["msg"])
	}
	if entry["component"] != "videoflip0" {
		t.Errorf("unexpected component %v", entry["component"])
	}
	if entry["level"] != "warning" {
		t.Errorf("unexpected level %v", entry["level"])
	}
}
