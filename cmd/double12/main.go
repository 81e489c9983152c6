// Package main provides the double12 CLI for simulating Mexican Train matches.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/signalnine/double12/config"
	"github.com/signalnine/double12/engine"
	"github.com/signalnine/double12/highscores"
	"github.com/signalnine/double12/simulation"
	"github.com/signalnine/double12/telemetry"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

type options struct {
	games          int
	seed           int64
	workers        int
	players        int
	maxPip         int
	handSize       int
	rounds         int
	ruleset        string
	rules          config.RuleToggles
	seats          string
	mctsIterations int
	statsOut       string
	highScores     string
	showLog        bool
	showScores     bool
	clearScores    bool
	logLevel       string
	showVersion    bool
}

func parseFlags(args []string, s config.Settings) (options, error) {
	o := options{rules: s.Rules}
	fs := flag.NewFlagSet("double12", flag.ContinueOnError)
	fs.IntVar(&o.games, "games", 1, "Number of matches to simulate")
	fs.Int64Var(&o.seed, "seed", 0, "Random seed (0 = use current time)")
	fs.IntVar(&o.workers, "workers", 0, "Number of worker goroutines (0 = auto-detect CPU count)")
	fs.IntVar(&o.players, "players", s.Players, "Seats at the table")
	fs.IntVar(&o.maxPip, "max-pip", s.MaxPip, "Highest pip value in the set")
	fs.IntVar(&o.handSize, "hand-size", s.HandSize, "Tiles dealt to each seat")
	fs.IntVar(&o.rounds, "rounds", s.Rounds, "Rounds per match")
	fs.StringVar(&o.ruleset, "ruleset", s.Ruleset, "Rules preset ("+strings.Join(engine.PresetNames(), ", ")+")")
	fs.Var(&o.rules, "rule", "Rule toggle for -ruleset custom, as name=true|false (repeatable)")
	fs.StringVar(&o.seats, "ai", s.Difficulty, "Comma-separated AI per seat (easy, normal, hard, chaos, mcts); the last repeats")
	fs.IntVar(&o.mctsIterations, "mcts-iterations", 200, "Search iterations per MCTS decision")
	fs.StringVar(&o.statsOut, "stats-out", "", "Write aggregated batch stats (FlatBuffers) to this file")
	fs.StringVar(&o.highScores, "highscores", s.HighScoresPath, "SQLite high-score database (empty = disabled)")
	fs.BoolVar(&o.showLog, "show-log", false, "Print the event log of a single match")
	fs.BoolVar(&o.showScores, "show-highscores", false, "Print the high-score table and exit")
	fs.BoolVar(&o.clearScores, "clear-highscores", false, "Empty the high-score table and exit")
	fs.StringVar(&o.logLevel, "log-level", s.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&o.showVersion, "version", false, "Show version information")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.games < 1 {
		return options{}, fmt.Errorf("-games must be >= 1, got %d", o.games)
	}
	return o, nil
}

func (o options) matchConfig(s config.Settings, logger *zap.Logger) (simulation.MatchConfig, error) {
	s.Players, s.MaxPip, s.HandSize, s.Rounds, s.Ruleset = o.players, o.maxPip, o.handSize, o.rounds, o.ruleset
	s.Rules = o.rules
	cfg, err := s.EngineConfig()
	if err != nil {
		return simulation.MatchConfig{}, err
	}
	var seats []simulation.AIPlayerType
	for _, name := range strings.Split(o.seats, ",") {
		ai, err := simulation.ParseAIType(name)
		if err != nil {
			return simulation.MatchConfig{}, err
		}
		seats = append(seats, ai)
	}
	return simulation.MatchConfig{
		Engine:         cfg,
		Players:        seats,
		MCTSIterations: o.mctsIterations,
		Logger:         logger,
	}, nil
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	opts, err := parseFlags(os.Args[1:], settings)
	if err != nil {
		return err
	}
	if opts.showVersion {
		fmt.Printf("double12 %s (built %s)\n", Version, BuildTime)
		return nil
	}

	settings.LogLevel = opts.logLevel
	logger, err := settings.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "double12", settings.TraceEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	if opts.showScores || opts.clearScores {
		return manageHighScores(ctx, opts)
	}

	mc, err := opts.matchConfig(settings, logger)
	if err != nil {
		return err
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	printBanner(opts, mc)
	if opts.games == 1 {
		return runOne(ctx, opts, mc)
	}
	return runMany(ctx, opts, mc)
}

func runOne(ctx context.Context, opts options, mc simulation.MatchConfig) error {
	result, st := simulation.RunMatch(ctx, mc, uint64(opts.seed))
	if opts.showLog && st.Valid() {
		for _, line := range st.Log() {
			fmt.Println(line)
		}
		fmt.Println()
	}
	if result.Error != "" {
		return fmt.Errorf("match failed: %s", result.Error)
	}
	printMatch(result, st)

	if opts.highScores == "" {
		return nil
	}
	store, err := highscores.Open(opts.highScores)
	if err != nil {
		return err
	}
	defer store.Close()

	ts := time.Now().UTC().Truncate(time.Millisecond)
	entry, err := highscores.EntryFromMatch(st, 0, mc.Players[0].String(), opts.ruleset, ts)
	if err != nil {
		return err
	}
	table, err := store.Add(ctx, entry)
	if err != nil {
		return err
	}
	for i, e := range table {
		if e.TS.Equal(ts) && e.PlayerName == entry.PlayerName && e.PlayerScore == entry.PlayerScore {
			fmt.Printf("High score table: %s placed #%d of %d\n", entry.PlayerName, i+1, len(table))
			return nil
		}
	}
	fmt.Printf("High score table: %s did not make the top %d\n", entry.PlayerName, highscores.MaxEntries)
	return nil
}

func runMany(ctx context.Context, opts options, mc simulation.MatchConfig) error {
	startTime := time.Now()
	stats, err := simulation.RunBatchParallel(ctx, mc, opts.games, uint64(opts.seed), opts.workers)
	if err != nil {
		return err
	}
	printSummary(stats, time.Since(startTime))

	if opts.statsOut != "" {
		if err := os.WriteFile(opts.statsOut, simulation.EncodeStats(stats), 0644); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
		fmt.Printf("Stats written to %s\n", opts.statsOut)
	}
	return nil
}

func manageHighScores(ctx context.Context, opts options) error {
	if opts.highScores == "" {
		return fmt.Errorf("no high-score database configured (-highscores or DOUBLE12_HIGHSCORES_PATH)")
	}
	store, err := highscores.Open(opts.highScores)
	if err != nil {
		return err
	}
	defer store.Close()

	if opts.clearScores {
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("High scores cleared.")
		return nil
	}

	table, err := store.Top(ctx, highscores.MaxEntries)
	if err != nil {
		return err
	}
	if len(table) == 0 {
		fmt.Println("No high scores yet.")
		return nil
	}
	fmt.Printf("%-4s %-12s %6s %6s %-8s %-9s %s\n", "#", "Player", "Score", "Place", "AI", "Rules", "Date")
	for i, e := range table {
		fmt.Printf("%-4d %-12s %6d %3d/%-2d %-8s %-9s %s\n",
			i+1, e.PlayerName, e.PlayerScore, e.Placement, e.PlayerCount,
			e.AIDifficulty, e.Ruleset, e.TS.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printBanner(opts options, mc simulation.MatchConfig) {
	fmt.Println()
	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║               Double 12 Mexican Train (Go)                 ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Tile Set:       double-%d (%d tiles)\n", mc.Engine.MaxPip, engine.TotalTiles(mc.Engine.MaxPip))
	fmt.Printf("  Players:        %d x %d tiles\n", mc.Engine.PlayerCount, mc.Engine.HandSize)
	fmt.Printf("  Rounds:         %d\n", mc.Engine.RoundsTotal)
	fmt.Printf("  Ruleset:        %s\n", opts.ruleset)
	fmt.Printf("  AI:             %s\n", opts.seats)
	fmt.Printf("  Games:          %d\n", opts.games)
	fmt.Printf("  Seed:           %d\n", opts.seed)
	if opts.games > 1 {
		fmt.Printf("  Workers:        %d (0=auto)\n", opts.workers)
	}
	fmt.Println()
}

func printMatch(result simulation.GameResult, st engine.Snapshot) {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("                        MATCH OVER")
	fmt.Println("════════════════════════════════════════════════════════════")
	for i, s := range st.Ranking() {
		p := st.Player(s.Player)
		fmt.Printf("  %d. %-12s %5d\n", i+1, p.Name(), s.Score)
	}
	fmt.Println()
	fmt.Printf("  Rounds:          %d (%d went out, %d stalemates)\n", result.Rounds, result.WentOut, result.Stalemates)
	fmt.Printf("  Turns:           %d\n", result.TurnCount)
	fmt.Printf("  Lead Changes:    %d\n", result.Tension.LeadChanges)
	fmt.Printf("  Time:            %s\n", formatDuration(time.Duration(result.DurationNs)))
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSummary(stats simulation.AggregatedStats, totalTime time.Duration) {
	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("                      BATCH SUMMARY")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("  Total Time:      %s\n", formatDuration(totalTime))
	fmt.Printf("  Matches:         %d (%d errors)\n", stats.TotalGames, stats.Errors)
	for i, w := range stats.Wins {
		fmt.Printf("  P%d Wins:         %d\n", i, w)
	}
	fmt.Printf("  Shared Wins:     %d\n", stats.Draws)
	fmt.Printf("  Turns:           avg %.1f, median %d\n", stats.AvgTurns, stats.MedianTurns)
	fmt.Printf("  Winning Score:   %.1f\n", stats.AvgWinningScore)
	fmt.Printf("  Round Endings:   %d went out, %d stalemates\n", stats.WentOut, stats.Stalemates)
	fmt.Printf("  Metrics:\n")
	fmt.Printf("    Forced Decisions:  %d / %d\n", stats.ForcedDecisions, stats.TotalDecisions)
	fmt.Printf("    Draws / Passes:    %d / %d\n", stats.TotalDraws, stats.TotalPasses)
	fmt.Printf("    Doubles Played:    %d\n", stats.DoublesPlayed)
	fmt.Printf("    Lead Changes:      %.2f\n", stats.AvgLeadChanges)
	fmt.Printf("    Closest Margin:    %.3f\n", stats.AvgClosestMargin)
	fmt.Printf("    Comeback Wins:     %d\n", stats.TrailingWinners)
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
