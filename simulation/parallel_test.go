package simulation

import (
	"context"
	"errors"
	"testing"
)

func TestRunBatchParallelMatchesSerial(t *testing.T) {
	cfg := smallMatch(NormalAI, ChaosAI, RandomAI)
	serial := RunBatch(context.Background(), cfg, 12, 777)

	for _, workers := range []int{1, 3, 0} {
		parallel, err := RunBatchParallel(context.Background(), cfg, 12, 777, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}

		// Durations are wall-clock and never match.
		parallel.AvgDurationNs = serial.AvgDurationNs
		if parallel.TotalGames != serial.TotalGames ||
			parallel.Draws != serial.Draws ||
			parallel.AvgTurns != serial.AvgTurns ||
			parallel.MedianTurns != serial.MedianTurns ||
			parallel.TotalActions != serial.TotalActions ||
			parallel.Stalemates != serial.Stalemates {
			t.Errorf("workers=%d: parallel %+v != serial %+v", workers, parallel, serial)
		}
		for i := range serial.Wins {
			if parallel.Wins[i] != serial.Wins[i] {
				t.Errorf("workers=%d: wins %v != %v", workers, parallel.Wins, serial.Wins)
				break
			}
		}
	}
}

func TestRunBatchParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatchParallel(ctx, smallMatch(NormalAI), 8, 1, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
