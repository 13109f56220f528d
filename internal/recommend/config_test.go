// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package recommend

import "testing"

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero min ratings", func(c *Config) { c.MinRatings = 0 }, false},
		{"negative min ratings", func(c *Config) { c.MinRatings = -1 }, true},
		{"min overlap one", func(c *Config) { c.MinOverlap = 1 }, true},
		{"min overlap three", func(c *Config) { c.MinOverlap = 3 }, false},
		{"negative workers", func(c *Config) { c.Workers = -2 }, true},
		{"negative threshold", func(c *Config) { c.ParallelThreshold = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cp := cfg.Clone()
	cp.MinRatings = 7

	if cfg.MinRatings != DefaultMinRatings {
		t.Errorf("Clone() shares state: MinRatings = %d", cfg.MinRatings)
	}
}

func TestConfig_WorkerCount(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.workerCount() < 1 {
		t.Errorf("workerCount() = %d, want >= 1", cfg.workerCount())
	}
	cfg.Workers = 3
	if got := cfg.workerCount(); got != 3 {
		t.Errorf("workerCount() = %d, want 3", got)
	}
}
