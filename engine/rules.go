package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Rules holds the house-rule toggles. A copy is frozen into each round.
type Rules struct {
	StartDoubleDescending      bool `json:"startDoubleDescending"`
	DrawUntilStartDouble       bool `json:"drawUntilStartDouble"`
	FallbackHighestDouble      bool `json:"fallbackHighestDouble"`
	AllowMultipleAfterSatisfy  bool `json:"allowMultipleAfterSatisfy"`
	DoubleMustBeSatisfied      bool `json:"doubleMustBeSatisfied"`
	UnsatisfiedDoubleEndsRound bool `json:"unsatisfiedDoubleEndsRound"`
	MexAlwaysOpen              bool `json:"mexAlwaysOpen"`
	OpenTrainOnNoMove          bool `json:"openTrainOnNoMove"`
}

// DefaultRules is the standard table: everything on except extra plays.
func DefaultRules() Rules {
	return Rules{
		StartDoubleDescending:      true,
		DrawUntilStartDouble:       true,
		FallbackHighestDouble:      true,
		AllowMultipleAfterSatisfy:  false,
		DoubleMustBeSatisfied:      true,
		UnsatisfiedDoubleEndsRound: true,
		MexAlwaysOpen:              true,
		OpenTrainOnNoMove:          true,
	}
}

// Preset names.
const (
	PresetStandard = "standard"
	PresetHouse    = "house"
	PresetChaos    = "chaos"
	// PresetCustom starts from the standard table; callers flip single
	// toggles on top of it.
	PresetCustom = "custom"
)

func extraPlays() Rules {
	r := DefaultRules()
	r.AllowMultipleAfterSatisfy = true
	return r
}

var presets = map[string]func() Rules{
	PresetStandard: DefaultRules,
	PresetHouse:    extraPlays,
	PresetChaos:    extraPlays,
	PresetCustom:   DefaultRules,
}

// Preset returns the named rule set.
func Preset(name string) (Rules, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Rules{}, newRuleError(CodeInvalidConfig, fmt.Sprintf("unknown ruleset %q (have %s)", name, strings.Join(PresetNames(), ", ")))
	}
	return fn(), nil
}

// PresetNames lists the known presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config is everything needed to start a match.
type Config struct {
	MaxPip      int
	PlayerCount int
	HandSize    int
	RoundsTotal int
	PlayerNames []string // optional, one per seat
	Rules       Rules
}

// DefaultConfig is a four-player double-twelve match of thirteen rounds.
func DefaultConfig() Config {
	return Config{
		MaxPip:      DefaultMaxPip,
		PlayerCount: 4,
		HandSize:    15,
		RoundsTotal: 13,
		Rules:       DefaultRules(),
	}
}

// Validate checks that the tile set can serve the table.
func (c Config) Validate() error {
	switch {
	case c.MaxPip < 0:
		return newRuleError(CodeInvalidConfig, fmt.Sprintf("maxPip must be >= 0, got %d", c.MaxPip))
	case c.PlayerCount < 1:
		return newRuleError(CodeInvalidConfig, fmt.Sprintf("playerCount must be >= 1, got %d", c.PlayerCount))
	case c.HandSize < 1:
		return newRuleError(CodeInvalidConfig, fmt.Sprintf("handSize must be >= 1, got %d", c.HandSize))
	case c.RoundsTotal < 1:
		return newRuleError(CodeInvalidConfig, fmt.Sprintf("roundsTotal must be >= 1, got %d", c.RoundsTotal))
	case c.PlayerCount*c.HandSize > TotalTiles(c.MaxPip):
		return newRuleError(CodeInvalidConfig, fmt.Sprintf("%d players x %d tiles exceeds the %d-tile set",
			c.PlayerCount, c.HandSize, TotalTiles(c.MaxPip)))
	case len(c.PlayerNames) != 0 && len(c.PlayerNames) != c.PlayerCount:
		return newRuleError(CodeInvalidConfig, fmt.Sprintf("got %d player names for %d players", len(c.PlayerNames), c.PlayerCount))
	}
	return nil
}

func (c Config) playerName(i int) string {
	if i < len(c.PlayerNames) && c.PlayerNames[i] != "" {
		return c.PlayerNames[i]
	}
	return fmt.Sprintf("P%d", i)
}

// requiredPip is the starting double for a round, counting rounds from 1.
func (c Config) requiredPip(round int) int {
	if !c.Rules.StartDoubleDescending {
		return c.MaxPip
	}
	return c.MaxPip - (round-1)%(c.MaxPip+1)
}
