// Package config loads CLI settings from DOUBLE12_* environment variables.
package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/signalnine/double12/engine"
)

// Settings are the environment defaults; command-line flags override them.
type Settings struct {
	MaxPip         int      `env:"DOUBLE12_MAX_PIP"         envDefault:"12"`
	Players        int      `env:"DOUBLE12_PLAYERS"         envDefault:"4"`
	HandSize       int      `env:"DOUBLE12_HAND_SIZE"       envDefault:"15"`
	Rounds         int      `env:"DOUBLE12_ROUNDS"          envDefault:"13"`
	PlayerNames    []string `env:"DOUBLE12_PLAYER_NAMES"    envSeparator:","`
	Ruleset        string   `env:"DOUBLE12_RULESET"         envDefault:"standard"`
	Difficulty     string   `env:"DOUBLE12_DIFFICULTY"      envDefault:"normal"`
	HighScoresPath string   `env:"DOUBLE12_HIGHSCORES_PATH"`
	LogLevel       string   `env:"DOUBLE12_LOG_LEVEL"       envDefault:"info"`
	LogJSON        bool     `env:"DOUBLE12_LOG_JSON"`
	TraceEndpoint  string   `env:"DOUBLE12_OTLP_ENDPOINT"`

	Rules RuleToggles
}

// RuleToggles override single rules on top of the custom preset. A nil
// field keeps the standard value.
type RuleToggles struct {
	StartDoubleDescending      *bool `env:"DOUBLE12_RULE_START_DOUBLE_DESCENDING"`
	DrawUntilStartDouble       *bool `env:"DOUBLE12_RULE_DRAW_UNTIL_START_DOUBLE"`
	FallbackHighestDouble      *bool `env:"DOUBLE12_RULE_FALLBACK_HIGHEST_DOUBLE"`
	AllowMultipleAfterSatisfy  *bool `env:"DOUBLE12_RULE_ALLOW_MULTIPLE_AFTER_SATISFY"`
	DoubleMustBeSatisfied      *bool `env:"DOUBLE12_RULE_DOUBLE_MUST_BE_SATISFIED"`
	UnsatisfiedDoubleEndsRound *bool `env:"DOUBLE12_RULE_UNSATISFIED_DOUBLE_ENDS_ROUND"`
	MexAlwaysOpen              *bool `env:"DOUBLE12_RULE_MEX_ALWAYS_OPEN"`
	OpenTrainOnNoMove          *bool `env:"DOUBLE12_RULE_OPEN_TRAIN_ON_NO_MOVE"`
}

func (t *RuleToggles) fields() map[string]**bool {
	return map[string]**bool{
		"startdoubledescending":      &t.StartDoubleDescending,
		"drawuntilstartdouble":       &t.DrawUntilStartDouble,
		"fallbackhighestdouble":      &t.FallbackHighestDouble,
		"allowmultipleaftersatisfy":  &t.AllowMultipleAfterSatisfy,
		"doublemustbesatisfied":      &t.DoubleMustBeSatisfied,
		"unsatisfieddoubleendsround": &t.UnsatisfiedDoubleEndsRound,
		"mexalwaysopen":              &t.MexAlwaysOpen,
		"opentrainonnomove":          &t.OpenTrainOnNoMove,
	}
}

// Set parses one "name=bool" toggle, e.g. "mexAlwaysOpen=false". Names
// match the engine's JSON rule names, case-insensitively.
func (t *RuleToggles) Set(value string) error {
	name, raw, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("rule %q: want name=true|false", value)
	}
	field, ok := t.fields()[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown rule %q", name)
	}
	on, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("rule %s: %w", name, err)
	}
	*field = &on
	return nil
}

func (t *RuleToggles) String() string {
	if t == nil {
		return ""
	}
	var set []string
	for name, f := range t.fields() {
		if *f != nil {
			set = append(set, fmt.Sprintf("%s=%t", name, **f))
		}
	}
	sort.Strings(set)
	return strings.Join(set, ",")
}

// Apply flips every set toggle on r.
func (t RuleToggles) Apply(r engine.Rules) engine.Rules {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&r.StartDoubleDescending, t.StartDoubleDescending)
	set(&r.DrawUntilStartDouble, t.DrawUntilStartDouble)
	set(&r.FallbackHighestDouble, t.FallbackHighestDouble)
	set(&r.AllowMultipleAfterSatisfy, t.AllowMultipleAfterSatisfy)
	set(&r.DoubleMustBeSatisfied, t.DoubleMustBeSatisfied)
	set(&r.UnsatisfiedDoubleEndsRound, t.UnsatisfiedDoubleEndsRound)
	set(&r.MexAlwaysOpen, t.MexAlwaysOpen)
	set(&r.OpenTrainOnNoMove, t.OpenTrainOnNoMove)
	return r
}

// Load parses Settings from the process environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// EngineConfig turns the settings into a validated engine configuration.
func (s Settings) EngineConfig() (engine.Config, error) {
	rules, err := engine.Preset(s.Ruleset)
	if err != nil {
		return engine.Config{}, err
	}
	// Toggles only take effect under the custom preset.
	if strings.EqualFold(strings.TrimSpace(s.Ruleset), engine.PresetCustom) {
		rules = s.Rules.Apply(rules)
	}
	cfg := engine.Config{
		MaxPip:      s.MaxPip,
		PlayerCount: s.Players,
		HandSize:    s.HandSize,
		RoundsTotal: s.Rounds,
		PlayerNames: s.PlayerNames,
		Rules:       rules,
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}

// NewLogger builds a console logger, or a production JSON logger when
// LogJSON is set.
func (s Settings) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(strings.ToLower(strings.TrimSpace(s.LogLevel)))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	if s.LogJSON {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	return zc.Build()
}
