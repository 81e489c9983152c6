package simulation

import (
	"errors"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/double12/simulation/statsfb"
)

var ErrShortStats = errors.New("stats buffer too short")

// EncodeStats serializes aggregated stats as a statsfb.MatchStats buffer.
func EncodeStats(stats AggregatedStats) []byte {
	builder := flatbuffers.NewBuilder(256)

	// Vectors must be finished before the table is started.
	statsfb.MatchStatsStartWinsVector(builder, len(stats.Wins))
	for i := len(stats.Wins) - 1; i >= 0; i-- {
		builder.PrependUint32(stats.Wins[i])
	}
	winsOffset := builder.EndVector(len(stats.Wins))

	statsfb.MatchStatsStart(builder)
	statsfb.MatchStatsAddTotalGames(builder, stats.TotalGames)
	statsfb.MatchStatsAddPlayerCount(builder, stats.PlayerCount)
	statsfb.MatchStatsAddWins(builder, winsOffset)
	statsfb.MatchStatsAddDraws(builder, stats.Draws)
	statsfb.MatchStatsAddAvgTurns(builder, stats.AvgTurns)
	statsfb.MatchStatsAddMedianTurns(builder, stats.MedianTurns)
	statsfb.MatchStatsAddAvgRounds(builder, stats.AvgRounds)
	statsfb.MatchStatsAddAvgWinningScore(builder, stats.AvgWinningScore)
	statsfb.MatchStatsAddStalemates(builder, stats.Stalemates)
	statsfb.MatchStatsAddWentOut(builder, stats.WentOut)
	statsfb.MatchStatsAddAvgDurationNs(builder, stats.AvgDurationNs)
	statsfb.MatchStatsAddErrors(builder, stats.Errors)

	statsfb.MatchStatsAddTotalDecisions(builder, stats.TotalDecisions)
	statsfb.MatchStatsAddTotalValidMoves(builder, stats.TotalValidMoves)
	statsfb.MatchStatsAddForcedDecisions(builder, stats.ForcedDecisions)
	statsfb.MatchStatsAddTotalInteractions(builder, stats.TotalInteractions)
	statsfb.MatchStatsAddTotalActions(builder, stats.TotalActions)
	statsfb.MatchStatsAddTotalDraws(builder, stats.TotalDraws)
	statsfb.MatchStatsAddTotalPasses(builder, stats.TotalPasses)
	statsfb.MatchStatsAddDoublesPlayed(builder, stats.DoublesPlayed)
	statsfb.MatchStatsAddOverriddenPicks(builder, stats.OverriddenPicks)

	statsfb.MatchStatsAddAvgLeadChanges(builder, stats.AvgLeadChanges)
	statsfb.MatchStatsAddAvgClosestMargin(builder, stats.AvgClosestMargin)
	statsfb.MatchStatsAddAvgDecisiveRoundPct(builder, stats.AvgDecisiveRoundPct)
	statsfb.MatchStatsAddTrailingWinners(builder, stats.TrailingWinners)
	builder.Finish(statsfb.MatchStatsEnd(builder))

	return builder.FinishedBytes()
}

// DecodeStats reads a buffer produced by EncodeStats.
func DecodeStats(buf []byte) (AggregatedStats, error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return AggregatedStats{}, ErrShortStats
	}
	fb := statsfb.GetRootAsMatchStats(buf, 0)

	stats := AggregatedStats{
		TotalGames:      fb.TotalGames(),
		PlayerCount:     fb.PlayerCount(),
		Draws:           fb.Draws(),
		AvgTurns:        fb.AvgTurns(),
		MedianTurns:     fb.MedianTurns(),
		AvgRounds:       fb.AvgRounds(),
		AvgWinningScore: fb.AvgWinningScore(),
		Stalemates:      fb.Stalemates(),
		WentOut:         fb.WentOut(),
		AvgDurationNs:   fb.AvgDurationNs(),
		Errors:          fb.Errors(),

		TotalDecisions:    fb.TotalDecisions(),
		TotalValidMoves:   fb.TotalValidMoves(),
		ForcedDecisions:   fb.ForcedDecisions(),
		TotalInteractions: fb.TotalInteractions(),
		TotalActions:      fb.TotalActions(),
		TotalDraws:        fb.TotalDraws(),
		TotalPasses:       fb.TotalPasses(),
		DoublesPlayed:     fb.DoublesPlayed(),
		OverriddenPicks:   fb.OverriddenPicks(),

		AvgLeadChanges:      fb.AvgLeadChanges(),
		AvgClosestMargin:    fb.AvgClosestMargin(),
		AvgDecisiveRoundPct: fb.AvgDecisiveRoundPct(),
		TrailingWinners:     fb.TrailingWinners(),
	}
	stats.Wins = make([]uint32, fb.WinsLength())
	for i := range stats.Wins {
		stats.Wins[i] = fb.Wins(i)
	}
	return stats, nil
}
