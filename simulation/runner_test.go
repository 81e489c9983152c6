package simulation

import (
	"context"
	"testing"

	"github.com/signalnine/double12/engine"
)

func smallMatch(players ...AIPlayerType) MatchConfig {
	cfg := engine.DefaultConfig()
	cfg.MaxPip = 6
	cfg.PlayerCount = 3
	cfg.HandSize = 7
	cfg.RoundsTotal = 3
	return MatchConfig{Engine: cfg, Players: players, MCTSIterations: 24}
}

func TestRunSingleGame(t *testing.T) {
	for _, ai := range []AIPlayerType{RandomAI, NormalAI, HardAI, ChaosAI} {
		t.Run(ai.String(), func(t *testing.T) {
			cfg := smallMatch(ai)
			result := RunSingleGame(context.Background(), cfg, 42)

			if result.Error != "" {
				t.Fatalf("Game failed: %s", result.Error)
			}
			if result.Rounds != uint32(cfg.Engine.RoundsTotal) {
				t.Errorf("Rounds = %d, want %d", result.Rounds, cfg.Engine.RoundsTotal)
			}
			if result.Stalemates+result.WentOut != result.Rounds {
				t.Errorf("round endings %d+%d don't add up to %d", result.Stalemates, result.WentOut, result.Rounds)
			}
			if len(result.Winners) == 0 {
				t.Fatal("match has no winner")
			}
			if len(result.Scores) != cfg.Engine.PlayerCount {
				t.Fatalf("got %d scores", len(result.Scores))
			}
			for _, w := range result.Winners {
				for _, s := range result.Scores {
					if result.Scores[w] > s {
						t.Errorf("winner P%d scored %d, someone scored %d", w, result.Scores[w], s)
					}
				}
			}
			if result.TurnCount == 0 {
				t.Error("Game should have at least one turn")
			}
			if result.Tension.TotalRounds != int(result.Rounds) {
				t.Errorf("tension sampled %d rounds", result.Tension.TotalRounds)
			}

			t.Logf("winners=%v scores=%v turns=%d stalemates=%d", result.Winners, result.Scores, result.TurnCount, result.Stalemates)
		})
	}
}

func TestRunSingleGameMixedTable(t *testing.T) {
	result := RunSingleGame(context.Background(), smallMatch(MCTSAI, NormalAI, RandomAI), 7)
	if result.Error != "" {
		t.Fatalf("Game failed: %s", result.Error)
	}
	if result.Metrics.TotalDecisions == 0 {
		t.Error("no decisions recorded")
	}
}

func TestRunSingleGameRejectsBadConfig(t *testing.T) {
	cfg := smallMatch(NormalAI)
	cfg.Engine.HandSize = 0
	if result := RunSingleGame(context.Background(), cfg, 1); result.Error == "" {
		t.Error("expected an error for an invalid table")
	}
}

func TestRunSingleGameDeterministic(t *testing.T) {
	cfg := smallMatch(HardAI, ChaosAI)
	a := RunSingleGame(context.Background(), cfg, 99)
	b := RunSingleGame(context.Background(), cfg, 99)
	if a.TurnCount != b.TurnCount || a.Metrics != b.Metrics {
		t.Errorf("same seed diverged: %d/%d turns", a.TurnCount, b.TurnCount)
	}
	for i := range a.Scores {
		if a.Scores[i] != b.Scores[i] {
			t.Fatalf("scores diverged: %v vs %v", a.Scores, b.Scores)
		}
	}
}

func TestRunBatch(t *testing.T) {
	stats := RunBatch(context.Background(), smallMatch(NormalAI, RandomAI), 10, 12345)

	if stats.TotalGames != 10 {
		t.Errorf("Expected 10 games, got %d", stats.TotalGames)
	}
	if stats.Errors > 0 {
		t.Errorf("Got %d errors", stats.Errors)
	}

	total := stats.Draws
	for _, w := range stats.Wins {
		total += w
	}
	if total != 10 {
		t.Errorf("Wins don't add up: %v + %d draws", stats.Wins, stats.Draws)
	}
	if stats.AvgRounds != 3 {
		t.Errorf("AvgRounds = %v, want 3", stats.AvgRounds)
	}

	t.Logf("Batch results: wins=%v draws=%d avg turns=%.1f", stats.Wins, stats.Draws, stats.AvgTurns)
}

func TestAggregateResults(t *testing.T) {
	results := []GameResult{
		{Winners: []int{0}, Scores: []int{3, 10}, Rounds: 2, TurnCount: 10, WentOut: 2, DurationNs: 100,
			Metrics: GameMetrics{TotalDecisions: 5, TotalDraws: 1}},
		{Winners: []int{0, 1}, Scores: []int{7, 7}, Rounds: 2, TurnCount: 30, Stalemates: 1, WentOut: 1, DurationNs: 300,
			Metrics: GameMetrics{TotalDecisions: 7, TotalPasses: 2}},
		{Error: "boom", DurationNs: 200},
	}
	stats := aggregateResults(results, 2)

	if stats.TotalGames != 3 || stats.Errors != 1 {
		t.Fatalf("games=%d errors=%d", stats.TotalGames, stats.Errors)
	}
	if stats.Wins[0] != 1 || stats.Wins[1] != 0 || stats.Draws != 1 {
		t.Errorf("wins=%v draws=%d", stats.Wins, stats.Draws)
	}
	if stats.AvgTurns != 20 || stats.MedianTurns != 20 {
		t.Errorf("avg=%v median=%d", stats.AvgTurns, stats.MedianTurns)
	}
	if stats.AvgWinningScore != 5 {
		t.Errorf("AvgWinningScore = %v", stats.AvgWinningScore)
	}
	if stats.Stalemates != 1 || stats.WentOut != 3 {
		t.Errorf("stalemates=%d wentOut=%d", stats.Stalemates, stats.WentOut)
	}
	if stats.TotalDecisions != 12 || stats.TotalDraws != 1 || stats.TotalPasses != 2 {
		t.Errorf("metric totals off: %+v", stats)
	}
	if stats.AvgDurationNs != 200 {
		t.Errorf("AvgDurationNs = %d", stats.AvgDurationNs)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		in   []uint32
		want uint32
	}{
		{nil, 0},
		{[]uint32{5}, 5},
		{[]uint32{9, 1, 5}, 5},
		{[]uint32{4, 1, 3, 2}, 2},
	}
	for _, tt := range tests {
		if got := median(tt.in); got != tt.want {
			t.Errorf("median(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func BenchmarkRunSingleGame(b *testing.B) {
	cfg := smallMatch(NormalAI)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RunSingleGame(context.Background(), cfg, uint64(i))
	}
}
