package adapter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
)

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `catalog:
  path: /tmp/videos.txt
  format: text
playback:
  seed: 42
ui:
  picker: line
  color: false
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Catalog.Path != "/tmp/videos.txt" || cfg.Catalog.Format != "text" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Playback.Seed != 42 {
		t.Errorf("seed = %d", cfg.Playback.Seed)
	}
	if cfg.UI.Picker != PickerLine || cfg.UI.Color {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	// Unset keys keep their defaults
	if cfg.Logging.File != defaultLogPath() {
		t.Errorf("log file = %q", cfg.Logging.File)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  picker: tui\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REEL_CATALOG_PATH", "/srv/catalog.db")
	t.Setenv("REEL_UI_PICKER", "line")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Catalog.Path != "/srv/catalog.db" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.UI.Picker != PickerLine {
		t.Errorf("picker = %q", cfg.UI.Picker)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  picker: fancy\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid picker")
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for explicit missing config file")
	}
}

func TestResolvePicker(t *testing.T) {
	tests := []struct {
		mode        string
		interactive bool
		want        string
	}{
		{PickerAuto, true, PickerTUI},
		{PickerAuto, false, PickerLine},
		{PickerTUI, true, PickerTUI},
		{PickerTUI, false, PickerLine},
		{PickerLine, true, PickerLine},
		{PickerLine, false, PickerLine},
	}
	for _, tt := range tests {
		if got := ResolvePicker(tt.mode, tt.interactive); got != tt.want {
			t.Errorf("ResolvePicker(%q, %v) = %q, want %q", tt.mode, tt.interactive, got, tt.want)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reel.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "debug"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello", "key", "value")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) || !strings.Contains(string(data), `"key":"value"`) {
		t.Errorf("log file = %s", data)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLinePrompt(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("2\nnext command\n"))
	p := NewLinePrompt(in, &out)

	results := []*domain.Video{
		{ID: "a", Title: "A", Tags: []string{"#x"}},
		{ID: "b", Title: "B"},
	}
	reply, err := p.Prompt("term", results)
	if err != nil {
		t.Fatal(err)
	}
	if reply != "2" {
		t.Errorf("reply = %q", reply)
	}

	want := `Here are the results for term:
1) A (a) [#x]
2) B (b) []
Would you like to play any of the above? If yes, specify the number of the video.
If your answer is not a valid number, we will assume it's a no.
`
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}

	// The rest of the input is left for the caller
	rest, _ := in.ReadString('\n')
	if rest != "next command\n" {
		t.Errorf("remaining input = %q", rest)
	}
}

func TestLinePrompt_EOF(t *testing.T) {
	p := NewLinePrompt(bufio.NewReader(strings.NewReader("")), io.Discard)
	if _, err := p.Prompt("x", nil); !errors.Is(err, io.EOF) {
		t.Errorf("error = %v, want EOF", err)
	}

	p = NewLinePrompt(bufio.NewReader(strings.NewReader("1")), io.Discard)
	reply, err := p.Prompt("x", nil)
	if err != nil || reply != "1" {
		t.Errorf("unterminated reply = %q, %v", reply, err)
	}
}
