package config

import (
	"testing"

	"github.com/signalnine/double12/engine"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := s.EngineConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := engine.DefaultConfig()
	if cfg.MaxPip != want.MaxPip || cfg.PlayerCount != want.PlayerCount ||
		cfg.HandSize != want.HandSize || cfg.RoundsTotal != want.RoundsTotal {
		t.Errorf("defaults = %+v, want %+v", cfg, want)
	}
	if cfg.Rules != engine.DefaultRules() {
		t.Errorf("rules = %+v", cfg.Rules)
	}
	if s.Difficulty != "normal" || s.LogLevel != "info" || s.LogJSON {
		t.Errorf("settings = %+v", s)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DOUBLE12_MAX_PIP", "9")
	t.Setenv("DOUBLE12_PLAYERS", "3")
	t.Setenv("DOUBLE12_HAND_SIZE", "10")
	t.Setenv("DOUBLE12_ROUNDS", "5")
	t.Setenv("DOUBLE12_PLAYER_NAMES", "Ann,Bo,Cy")
	t.Setenv("DOUBLE12_RULESET", "House")
	t.Setenv("DOUBLE12_LOG_JSON", "true")

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := s.EngineConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxPip != 9 || cfg.PlayerCount != 3 || cfg.HandSize != 10 || cfg.RoundsTotal != 5 {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.PlayerNames) != 3 || cfg.PlayerNames[1] != "Bo" {
		t.Errorf("names = %v", cfg.PlayerNames)
	}
	house, _ := engine.Preset("house")
	if cfg.Rules != house {
		t.Errorf("rules = %+v, want house preset", cfg.Rules)
	}
	if !s.LogJSON {
		t.Error("LogJSON not parsed")
	}
}

func TestCustomRuleToggles(t *testing.T) {
	t.Setenv("DOUBLE12_RULESET", "custom")
	t.Setenv("DOUBLE12_RULE_MEX_ALWAYS_OPEN", "false")
	t.Setenv("DOUBLE12_RULE_ALLOW_MULTIPLE_AFTER_SATISFY", "true")

	s, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := s.EngineConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := engine.DefaultRules()
	want.MexAlwaysOpen = false
	want.AllowMultipleAfterSatisfy = true
	if cfg.Rules != want {
		t.Errorf("rules = %+v, want %+v", cfg.Rules, want)
	}

	s.Ruleset = "standard"
	if cfg, err = s.EngineConfig(); err != nil {
		t.Fatal(err)
	}
	if cfg.Rules != engine.DefaultRules() {
		t.Errorf("toggles leaked into standard: %+v", cfg.Rules)
	}
}

func TestRuleTogglesSet(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"mexAlwaysOpen=false", true, "mexalwaysopen=false"},
		{" OpenTrainOnNoMove = 1 ", true, "opentrainonnomove=true"},
		{"mexAlwaysOpen", false, ""},
		{"spinners=true", false, ""},
		{"mexAlwaysOpen=sometimes", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var rt RuleToggles
			err := rt.Set(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("Set(%q) err = %v", tt.in, err)
			}
			if got := rt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadRejectsBadNumber(t *testing.T) {
	t.Setenv("DOUBLE12_PLAYERS", "four")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEngineConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Settings)
	}{
		{"unknown ruleset", func(s *Settings) { s.Ruleset = "vegas" }},
		{"too many tiles", func(s *Settings) { s.Players, s.HandSize = 8, 20 }},
		{"no rounds", func(s *Settings) { s.Rounds = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load()
			if err != nil {
				t.Fatal(err)
			}
			tt.mod(&s)
			_, err = s.EngineConfig()
			if code, ok := engine.CodeOf(err); !ok || code != engine.CodeInvalidConfig {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, asJSON := range []bool{false, true} {
		s := Settings{LogLevel: "debug", LogJSON: asJSON}
		if _, err := s.NewLogger(); err != nil {
			t.Errorf("json=%v: %v", asJSON, err)
		}
	}
	if _, err := (Settings{LogLevel: "loud"}).NewLogger(); err == nil {
		t.Error("expected error for unknown level")
	}
}
