package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GameJob represents a single simulation job
type GameJob struct {
	SimID int
	Seed  uint64
}

// RunBatchParallel executes batch simulations on up to numWorkers goroutines.
// Seeds are drawn up front exactly as RunBatch draws them, so the aggregate
// matches the serial run for the same seed.
func RunBatchParallel(ctx context.Context, cfg MatchConfig, numGames int, seed uint64, numWorkers int) (AggregatedStats, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	ctx, span := tracer.Start(ctx, "simulation.RunBatchParallel")
	defer span.End()
	span.SetAttributes(
		attribute.Int("games", numGames),
		attribute.Int("workers", numWorkers),
		attribute.Int64("seed", int64(seed)),
	)

	rng := rand.New(rand.NewSource(int64(seed)))
	jobs := make([]GameJob, numGames)
	for i := range jobs {
		jobs[i] = GameJob{SimID: i, Seed: rng.Uint64()}
	}

	results := make([]GameResult, numGames)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for _, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[job.SimID] = RunSingleGame(gctx, cfg, job.Seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return AggregatedStats{}, fmt.Errorf("run batch: %w", err)
	}

	stats := aggregateResults(results, cfg.Engine.PlayerCount)
	cfg.logger().Info("parallel batch complete",
		zap.Int("games", numGames),
		zap.Int("workers", numWorkers),
		zap.Uint32("errors", stats.Errors))
	return stats, nil
}
