// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package recommend

import (
	"encoding/json"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("weights sum to 1", func(t *testing.T) {
		if sum := cfg.Similarity.Sum(); math.Abs(sum-1) > weightSumTolerance {
			t.Errorf("weights sum = %f, want 1.0", sum)
		}
	})

	t.Run("similarity defaults", func(t *testing.T) {
		w := cfg.Similarity
		if w.Genre != 0.4 || w.Era != 0.2 || w.Mood != 0.3 || w.Rating != 0.1 {
			t.Errorf("weights = %+v, want 0.4/0.2/0.3/0.1", w)
		}
		if w.EraSpanYears != 50 || w.RatingSpan != 10 {
			t.Errorf("spans = %v/%v, want 50/10", w.EraSpanYears, w.RatingSpan)
		}
	})

	t.Run("initial batch defaults", func(t *testing.T) {
		c := cfg.Initial
		if c.RatingWeight != 0.7 || c.PopularityWeight != 0.3 {
			t.Errorf("composite weights = %v/%v, want 0.7/0.3", c.RatingWeight, c.PopularityWeight)
		}
		if c.RelaxThreshold != 10 || c.FallbackThreshold != 5 {
			t.Errorf("thresholds = %d/%d, want 10/5", c.RelaxThreshold, c.FallbackThreshold)
		}
		if c.ShuffleWindow != 20 {
			t.Errorf("ShuffleWindow = %d, want 20", c.ShuffleWindow)
		}
	})

	t.Run("feedback defaults", func(t *testing.T) {
		f := cfg.Feedback
		if f.LikeWeight != 1.5 || f.DislikeWeight != 1.0 || f.Jitter != 0.1 {
			t.Errorf("feedback = %+v, want 1.5/1.0/0.1", f)
		}
		if cfg.ColdStart.Size != 30 {
			t.Errorf("ColdStart.Size = %d, want 30", cfg.ColdStart.Size)
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "negative weight",
			modify:  func(c *Config) { c.Similarity.Mood = -0.1 },
			wantErr: true,
		},
		{
			name:    "weights above 1",
			modify:  func(c *Config) { c.Similarity.Genre = 0.6 },
			wantErr: true,
		},
		{
			name: "all weights zero",
			modify: func(c *Config) {
				c.Similarity.Genre, c.Similarity.Era, c.Similarity.Mood, c.Similarity.Rating = 0, 0, 0, 0
			},
			wantErr: true,
		},
		{
			name:    "weights below 1",
			modify:  func(c *Config) { c.Similarity.Rating = 0 },
			wantErr: false,
		},
		{
			name:    "zero era span",
			modify:  func(c *Config) { c.Similarity.EraSpanYears = 0 },
			wantErr: true,
		},
		{
			name:    "zero rating span",
			modify:  func(c *Config) { c.Similarity.RatingSpan = 0 },
			wantErr: true,
		},
		{
			name:    "negative composite weight",
			modify:  func(c *Config) { c.Initial.PopularityWeight = -1 },
			wantErr: true,
		},
		{
			name:    "fallback above relax threshold",
			modify:  func(c *Config) { c.Initial.FallbackThreshold = 11 },
			wantErr: true,
		},
		{
			name:    "negative relax threshold",
			modify:  func(c *Config) { c.Initial.RelaxThreshold = -1 },
			wantErr: true,
		},
		{
			name:    "zero shuffle window",
			modify:  func(c *Config) { c.Initial.ShuffleWindow = 0 },
			wantErr: false,
		},
		{
			name:    "negative shuffle window",
			modify:  func(c *Config) { c.Initial.ShuffleWindow = -1 },
			wantErr: true,
		},
		{
			name:    "negative jitter",
			modify:  func(c *Config) { c.Feedback.Jitter = -0.1 },
			wantErr: true,
		},
		{
			name:    "zero jitter",
			modify:  func(c *Config) { c.Feedback.Jitter = 0 },
			wantErr: false,
		},
		{
			name:    "negative like weight",
			modify:  func(c *Config) { c.Feedback.LikeWeight = -1 },
			wantErr: true,
		},
		{
			name:    "zero cold start size",
			modify:  func(c *Config) { c.ColdStart.Size = 0 },
			wantErr: true,
		},
		{
			name:    "zero default k",
			modify:  func(c *Config) { c.Limits.DefaultK = 0 },
			wantErr: true,
		},
		{
			name:    "max k below default k",
			modify:  func(c *Config) { c.Limits.MaxK = c.Limits.DefaultK - 1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	original := DefaultConfig()
	original.Seed = 42

	clone := original.Clone()
	clone.Similarity.Genre = 0.1
	clone.Initial.ShuffleWindow = 3
	clone.Seed = 7

	if original.Similarity.Genre != 0.4 {
		t.Error("modifying clone changed original similarity weights")
	}
	if original.Initial.ShuffleWindow != 20 {
		t.Error("modifying clone changed original shuffle window")
	}
	if original.Seed != 42 {
		t.Error("modifying clone changed original seed")
	}
}

func TestConfigJSONSerialization(t *testing.T) {
	cfg := DefaultConfig()

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded Config
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded != *cfg {
		t.Errorf("decoded config = %+v, want %+v", decoded, *cfg)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	for _, key := range []string{"similarity", "initial", "feedback", "cold_start", "limits", "seed"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("serialized config missing key %q", key)
		}
	}
}
