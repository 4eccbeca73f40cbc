package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"error":   slog.LevelError,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" info ":  slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"":        slog.LevelDebug,
	}
	for input, want := range cases {
		if got := levelFromString(input); got != want {
			t.Errorf("levelFromString(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestComponentTagsLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Component(NewWriter(&buf, "info"), "pipeline")
	log.Debug("hidden")
	log.Info("loaded", "articles", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %s", out)
	}
	if !strings.Contains(out, "component=pipeline") || !strings.Contains(out, "articles=3") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestComponentNilBase(t *testing.T) {
	t.Parallel()

	Component(nil, "x").Info("discarded")
}
