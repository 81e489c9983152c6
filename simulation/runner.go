package simulation

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/signalnine/double12/engine"
)

var tracer = otel.Tracer("github.com/signalnine/double12/simulation")

// maxTurnsPerMatch guards against a driver bug looping forever.
const maxTurnsPerMatch = 100000

// MatchConfig describes the table for a simulated match.
type MatchConfig struct {
	Engine engine.Config
	// Players holds one AI per seat; shorter slices repeat their last entry.
	Players        []AIPlayerType
	MCTSIterations int
	Logger         *zap.Logger
}

func (c MatchConfig) seatAI(seat int) AIPlayerType {
	if len(c.Players) == 0 {
		return NormalAI
	}
	if seat < len(c.Players) {
		return c.Players[seat]
	}
	return c.Players[len(c.Players)-1]
}

func (c MatchConfig) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// GameMetrics counts driver activity over a match.
type GameMetrics struct {
	TotalDecisions    uint64 // Decision points (when player chooses move)
	TotalValidMoves   uint64 // Sum of legal plays at each decision
	ForcedDecisions   uint64 // Decisions with only 1 legal play
	TotalInteractions uint64 // Plays on another player's train
	TotalActions      uint64
	TotalDraws        uint64
	TotalPasses       uint64
	DoublesPlayed     uint64
	OverriddenPicks   uint64 // Policy picks replaced by the first legal move
}

// GameResult holds the outcome of a single match
type GameResult struct {
	Winners    []int // lowest cumulative score, ties included
	Scores     []int
	Rounds     uint32
	TurnCount  uint32
	Stalemates uint32
	WentOut    uint32
	DurationNs uint64
	Error      string
	Metrics    GameMetrics
	Tension    TensionMetrics
	Trailed    bool // winner was behind at the midpoint
}

// AggregatedStats summarizes multiple game results
type AggregatedStats struct {
	TotalGames      uint32
	PlayerCount     uint32
	Wins            []uint32 // outright wins per seat
	Draws           uint32   // shared wins
	AvgTurns        float32
	MedianTurns     uint32
	AvgRounds       float32
	AvgWinningScore float32
	Stalemates      uint32
	WentOut         uint32
	AvgDurationNs   uint64
	Errors          uint32

	TotalDecisions    uint64
	TotalValidMoves   uint64
	ForcedDecisions   uint64
	TotalInteractions uint64
	TotalActions      uint64
	TotalDraws        uint64
	TotalPasses       uint64
	DoublesPlayed     uint64
	OverriddenPicks   uint64

	AvgLeadChanges      float32
	AvgClosestMargin    float32
	AvgDecisiveRoundPct float32
	TrailingWinners     uint32
}

// RunBatch simulates multiple matches with the same configuration
func RunBatch(ctx context.Context, cfg MatchConfig, numGames int, seed uint64) AggregatedStats {
	ctx, span := tracer.Start(ctx, "simulation.RunBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("games", numGames), attribute.Int64("seed", int64(seed)))

	results := make([]GameResult, numGames)

	// Use seed for determinism
	rng := rand.New(rand.NewSource(int64(seed)))

	for i := 0; i < numGames; i++ {
		gameSeed := rng.Uint64()
		results[i] = RunSingleGame(ctx, cfg, gameSeed)
	}

	stats := aggregateResults(results, cfg.Engine.PlayerCount)
	cfg.logger().Info("batch complete",
		zap.Int("games", numGames),
		zap.Uint32("errors", stats.Errors),
		zap.Float32("avg_turns", stats.AvgTurns))
	return stats
}

// RunSingleGame plays one complete match to termination
func RunSingleGame(ctx context.Context, cfg MatchConfig, seed uint64) GameResult {
	result, _ := RunMatch(ctx, cfg, seed)
	return result
}

// RunMatch is RunSingleGame that also hands back the final table state.
func RunMatch(ctx context.Context, cfg MatchConfig, seed uint64) (GameResult, engine.Snapshot) {
	_, span := tracer.Start(ctx, "simulation.RunMatch")
	defer span.End()
	span.SetAttributes(attribute.Int64("seed", int64(seed)))

	start := time.Now()
	result, st := playMatch(cfg, seed)
	result.DurationNs = uint64(time.Since(start).Nanoseconds())

	span.SetAttributes(
		attribute.Int("rounds", int(result.Rounds)),
		attribute.Int("turns", int(result.TurnCount)),
	)
	if result.Error != "" {
		span.SetStatus(codes.Error, result.Error)
	}
	return result, st
}

func playMatch(cfg MatchConfig, seed uint64) (GameResult, engine.Snapshot) {
	var result GameResult
	log := cfg.logger()

	rng := rand.New(rand.NewSource(int64(seed)))
	e, err := engine.New(cfg.Engine, engine.WithRand(rand.New(rand.NewSource(rng.Int63()))), engine.WithLogger(log.Named("engine")))
	if err != nil {
		result.Error = err.Error()
		return result, engine.Snapshot{}
	}
	st, err := e.NewGame()
	if err != nil {
		result.Error = err.Error()
		return result, st
	}

	pickers := make([]Picker, cfg.Engine.PlayerCount)
	for i := range pickers {
		pickers[i] = NewPicker(cfg.seatAI(i), cfg.MCTSIterations, rng)
	}
	tension := NewTensionMetrics(cfg.Engine.RoundsTotal)
	detector := &LowScoreLeaderDetector{}

	for !st.MatchOver() {
		if result.TurnCount >= maxTurnsPerMatch {
			result.Error = "turn limit reached"
			return result, st
		}
		if st.RoundOver() {
			if st, err = e.StartNextRound(); err != nil {
				result.Error = err.Error()
				return result, st
			}
			continue
		}

		cur := st.CurrentPlayer()
		if err := TakeTurn(e, cur, pickers[cur], &result.Metrics); err != nil {
			log.Warn("driver error", zap.Uint64("seed", seed), zap.Error(err))
			result.Error = err.Error()
			return result, st
		}
		result.TurnCount++

		st = e.State()
		if st.RoundOver() {
			result.Rounds++
			if strings.HasPrefix(st.Summary().Reason, "Stalemate") {
				result.Stalemates++
			} else {
				result.WentOut++
			}
			tension.Update(st, detector)
		}
	}

	result.Winners = st.MatchWinners()
	result.Scores = make([]int, st.NumPlayers())
	for i, p := range st.Players() {
		result.Scores[i] = p.Score()
	}
	winner := -1
	if len(result.Winners) == 1 {
		winner = result.Winners[0]
	}
	tension.Finalize(winner)
	result.Tension = *tension
	result.Trailed = tension.TrailedAtHalf(winner)
	return result, st
}

// aggregateResults computes summary statistics
func aggregateResults(results []GameResult, playerCount int) AggregatedStats {
	stats := AggregatedStats{
		TotalGames:  uint32(len(results)),
		PlayerCount: uint32(playerCount),
		Wins:        make([]uint32, playerCount),
	}

	turnCounts := make([]uint32, 0, len(results))
	totalDuration := uint64(0)
	var rounds, winningScore uint64
	var leadChanges, closest, decisive float64

	for _, result := range results {
		if result.Error != "" {
			stats.Errors++
			continue
		}

		if len(result.Winners) == 1 {
			if w := result.Winners[0]; w < playerCount {
				stats.Wins[w]++
			}
		} else {
			stats.Draws++
		}
		if len(result.Winners) > 0 {
			winningScore += uint64(result.Scores[result.Winners[0]])
		}

		turnCounts = append(turnCounts, result.TurnCount)
		totalDuration += result.DurationNs
		rounds += uint64(result.Rounds)
		stats.Stalemates += result.Stalemates
		stats.WentOut += result.WentOut

		stats.TotalDecisions += result.Metrics.TotalDecisions
		stats.TotalValidMoves += result.Metrics.TotalValidMoves
		stats.ForcedDecisions += result.Metrics.ForcedDecisions
		stats.TotalInteractions += result.Metrics.TotalInteractions
		stats.TotalActions += result.Metrics.TotalActions
		stats.TotalDraws += result.Metrics.TotalDraws
		stats.TotalPasses += result.Metrics.TotalPasses
		stats.DoublesPlayed += result.Metrics.DoublesPlayed
		stats.OverriddenPicks += result.Metrics.OverriddenPicks

		leadChanges += float64(result.Tension.LeadChanges)
		closest += float64(result.Tension.ClosestMargin)
		if result.Tension.TotalRounds > 0 {
			decisive += float64(result.Tension.DecisiveRound) / float64(result.Tension.TotalRounds)
		}
		if result.Trailed {
			stats.TrailingWinners++
		}
	}

	if n := len(turnCounts); n > 0 {
		sum := uint64(0)
		for _, tc := range turnCounts {
			sum += uint64(tc)
		}
		stats.AvgTurns = float32(sum) / float32(n)
		stats.MedianTurns = median(turnCounts)
		stats.AvgRounds = float32(rounds) / float32(n)
		stats.AvgWinningScore = float32(winningScore) / float32(n)
		stats.AvgLeadChanges = float32(leadChanges / float64(n))
		stats.AvgClosestMargin = float32(closest / float64(n))
		stats.AvgDecisiveRoundPct = float32(decisive / float64(n))
		stats.AvgDurationNs = totalDuration / uint64(n)
	}

	return stats
}

// median calculates the median of a slice
func median(values []uint32) uint32 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]uint32, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
