package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "json")
	log.Info().Str("component", "test").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" || entry["component"] != "test" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp in %v", entry)
	}
}

func TestNewBufferDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "")
	log.Info().Msg("plain")

	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("expected JSON for non-terminal writer, got %q", buf.String())
	}
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	_ = New(&buf, "loud", "json")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", zerolog.GlobalLevel())
	}
}
