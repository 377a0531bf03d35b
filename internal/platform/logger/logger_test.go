package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriterTagsService(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "campaigns")
	log.Info().Str("campaign_id", "c1").Msg("campaign created")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["service"] != "campaigns" {
		t.Fatalf("service = %v", entry["service"])
	}
	if entry["campaign_id"] != "c1" {
		t.Fatalf("campaign_id = %v", entry["campaign_id"])
	}
	if entry["message"] != "campaign created" {
		t.Fatalf("message = %v", entry["message"])
	}
}

func TestLevel(t *testing.T) {
	if got := Level("debug"); got != zerolog.DebugLevel {
		t.Fatalf("Level(debug) = %v", got)
	}
	if got := Level("nonsense"); got != zerolog.InfoLevel {
		t.Fatalf("Level(nonsense) = %v, want info", got)
	}
	if got := Level(""); got != zerolog.InfoLevel {
		t.Fatalf("Level(empty) = %v, want info", got)
	}
}
