// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// captureGlobal points the global logger at a buffer for the test and
// restores the previous logger and level afterwards.
func captureGlobal(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	cfg.Output = &buf
	Init(cfg)
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" {
		t.Errorf("DefaultConfig() = %+v, want info/json", cfg)
	}
	if !cfg.Timestamp {
		t.Error("DefaultConfig().Timestamp = false, want true")
	}
}

func TestFromSettings(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
		caller bool
		want   Config
	}{
		{"empty keeps defaults", "", "", false, Config{Level: "info", Format: "json"}},
		{"overrides", "debug", "console", true, Config{Level: "debug", Format: "console", Caller: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSettings(tt.level, tt.format, tt.caller)
			if got.Level != tt.want.Level || got.Format != tt.want.Format || got.Caller != tt.want.Caller {
				t.Errorf("FromSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit_JSONFields(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "info", Format: "json", Timestamp: true})

	Info().Int("users", 943).Msg("matrix built")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["message"] != "matrix built" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["users"] != float64(943) {
		t.Errorf("users = %v, want 943", entry["users"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("time field missing")
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "warn", Format: "json"})

	Debug().Msg("hidden-debug")
	Info().Msg("hidden-info")
	Warn().Msg("shown-warn")
	Error().Msg("shown-error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level events written: %s", out)
	}
	if !strings.Contains(out, "shown-warn") || !strings.Contains(out, "shown-error") {
		t.Errorf("expected warn and error events: %s", out)
	}
	if IsLevelEnabled(zerolog.InfoLevel) {
		t.Error("IsLevelEnabled(info) = true at warn level")
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "info", Format: "console"})

	Info().Msg("console line")

	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("console output looks like JSON: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "console line") {
		t.Errorf("message missing: %s", buf.String())
	}
}

func TestErr(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "info", Format: "json"})

	Err(errors.New("title not found")).Msg("query failed")

	if !strings.Contains(buf.String(), `"error":"title not found"`) {
		t.Errorf("error field missing: %s", buf.String())
	}
}

func TestSetLevelString(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	SetLevelString("error")
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Errorf("GlobalLevel() = %v, want error", zerolog.GlobalLevel())
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "info", Format: "json"})

	WithComponent("recommend").Info().Msg("ready")

	if !strings.Contains(buf.String(), `"component":"recommend"`) {
		t.Errorf("component field missing: %s", buf.String())
	}
}

func TestNewTestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Warn().Str("title", "Fargo (1996)").Msg("few ratings")

	if !strings.Contains(buf.String(), "Fargo (1996)") {
		t.Errorf("field missing: %s", buf.String())
	}
}
