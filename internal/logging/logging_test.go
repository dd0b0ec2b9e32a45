package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_LevelFallback(t *testing.T) {
	if got := New("bogus", true).GetLevel(); got != logrus.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
	if got := New("debug", true).GetLevel(); got != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}
}

func TestLogError_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "info", false)

	LogError(logger, "repository", "Append", "invoice", map[string]string{"invoiceNo": "INV2025030001"}, errors.New("disk full"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "disk full" || entry["level"] != "error" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if entry["module"] != "repository" || entry["funcName"] != "Append" || entry["context"] != "invoice" {
		t.Errorf("missing location fields: %v", entry)
	}
	if entry["data"] == nil {
		t.Errorf("missing data field: %v", entry)
	}
}
