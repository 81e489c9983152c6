// Package statsfb holds the FlatBuffers accessors for the MatchStats table
// described in stats.fbs.
package statsfb

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type MatchStats struct {
	_tab flatbuffers.Table
}

func GetRootAsMatchStats(buf []byte, offset flatbuffers.UOffsetT) *MatchStats {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &MatchStats{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *MatchStats) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *MatchStats) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *MatchStats) TotalGames() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) PlayerCount() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) Wins(j int) uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *MatchStats) WinsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *MatchStats) Draws() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) AvgTurns() float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetFloat32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) MedianTurns() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) AvgRounds() float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.GetFloat32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) AvgWinningScore() float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		return rcv._tab.GetFloat32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) Stalemates() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(20))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) WentOut() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(22))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) AvgDurationNs() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(24))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) Errors() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(26))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) TotalDecisions() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(28))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) TotalValidMoves() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(30))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) ForcedDecisions() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(32))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) TotalInteractions() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(34))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) TotalActions() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(36))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) TotalDraws() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(38))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) TotalPasses() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(40))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) DoublesPlayed() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(42))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) OverriddenPicks() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(44))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) AvgLeadChanges() float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(46))
	if o != 0 {
		return rcv._tab.GetFloat32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) AvgClosestMargin() float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(48))
	if o != 0 {
		return rcv._tab.GetFloat32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) AvgDecisiveRoundPct() float32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(50))
	if o != 0 {
		return rcv._tab.GetFloat32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *MatchStats) TrailingWinners() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(52))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func MatchStatsStart(builder *flatbuffers.Builder) {
	builder.StartObject(25)
}

func MatchStatsAddTotalGames(builder *flatbuffers.Builder, totalGames uint32) {
	builder.PrependUint32Slot(0, totalGames, 0)
}

func MatchStatsAddPlayerCount(builder *flatbuffers.Builder, playerCount uint32) {
	builder.PrependUint32Slot(1, playerCount, 0)
}

func MatchStatsAddWins(builder *flatbuffers.Builder, wins flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, flatbuffers.UOffsetT(wins), 0)
}

func MatchStatsStartWinsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func MatchStatsAddDraws(builder *flatbuffers.Builder, draws uint32) {
	builder.PrependUint32Slot(3, draws, 0)
}

func MatchStatsAddAvgTurns(builder *flatbuffers.Builder, avgTurns float32) {
	builder.PrependFloat32Slot(4, avgTurns, 0)
}

func MatchStatsAddMedianTurns(builder *flatbuffers.Builder, medianTurns uint32) {
	builder.PrependUint32Slot(5, medianTurns, 0)
}

func MatchStatsAddAvgRounds(builder *flatbuffers.Builder, avgRounds float32) {
	builder.PrependFloat32Slot(6, avgRounds, 0)
}

func MatchStatsAddAvgWinningScore(builder *flatbuffers.Builder, avgWinningScore float32) {
	builder.PrependFloat32Slot(7, avgWinningScore, 0)
}

func MatchStatsAddStalemates(builder *flatbuffers.Builder, stalemates uint32) {
	builder.PrependUint32Slot(8, stalemates, 0)
}

func MatchStatsAddWentOut(builder *flatbuffers.Builder, wentOut uint32) {
	builder.PrependUint32Slot(9, wentOut, 0)
}

func MatchStatsAddAvgDurationNs(builder *flatbuffers.Builder, avgDurationNs uint64) {
	builder.PrependUint64Slot(10, avgDurationNs, 0)
}

func MatchStatsAddErrors(builder *flatbuffers.Builder, errors uint32) {
	builder.PrependUint32Slot(11, errors, 0)
}

func MatchStatsAddTotalDecisions(builder *flatbuffers.Builder, totalDecisions uint64) {
	builder.PrependUint64Slot(12, totalDecisions, 0)
}

func MatchStatsAddTotalValidMoves(builder *flatbuffers.Builder, totalValidMoves uint64) {
	builder.PrependUint64Slot(13, totalValidMoves, 0)
}

func MatchStatsAddForcedDecisions(builder *flatbuffers.Builder, forcedDecisions uint64) {
	builder.PrependUint64Slot(14, forcedDecisions, 0)
}

func MatchStatsAddTotalInteractions(builder *flatbuffers.Builder, totalInteractions uint64) {
	builder.PrependUint64Slot(15, totalInteractions, 0)
}

func MatchStatsAddTotalActions(builder *flatbuffers.Builder, totalActions uint64) {
	builder.PrependUint64Slot(16, totalActions, 0)
}

func MatchStatsAddTotalDraws(builder *flatbuffers.Builder, totalDraws uint64) {
	builder.PrependUint64Slot(17, totalDraws, 0)
}

func MatchStatsAddTotalPasses(builder *flatbuffers.Builder, totalPasses uint64) {
	builder.PrependUint64Slot(18, totalPasses, 0)
}

func MatchStatsAddDoublesPlayed(builder *flatbuffers.Builder, doublesPlayed uint64) {
	builder.PrependUint64Slot(19, doublesPlayed, 0)
}

func MatchStatsAddOverriddenPicks(builder *flatbuffers.Builder, overriddenPicks uint64) {
	builder.PrependUint64Slot(20, overriddenPicks, 0)
}

func MatchStatsAddAvgLeadChanges(builder *flatbuffers.Builder, avgLeadChanges float32) {
	builder.PrependFloat32Slot(21, avgLeadChanges, 0)
}

func MatchStatsAddAvgClosestMargin(builder *flatbuffers.Builder, avgClosestMargin float32) {
	builder.PrependFloat32Slot(22, avgClosestMargin, 0)
}

func MatchStatsAddAvgDecisiveRoundPct(builder *flatbuffers.Builder, avgDecisiveRoundPct float32) {
	builder.PrependFloat32Slot(23, avgDecisiveRoundPct, 0)
}

func MatchStatsAddTrailingWinners(builder *flatbuffers.Builder, trailingWinners uint32) {
	builder.PrependUint32Slot(24, trailingWinners, 0)
}

func MatchStatsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
