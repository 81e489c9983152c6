package simulation

import "github.com/signalnine/double12/engine"

// TensionMetrics tracks how close a match stayed, sampled at each round end.
type TensionMetrics struct {
	LeadChanges   int     // Number of times leader switched
	DecisiveRound int     // Round after which the winner led for good
	ClosestMargin float32 // Smallest normalized gap between 1st and 2nd (0 = tied)
	TotalRounds   int

	// Internal tracking (not serialized)
	currentLeader int   // Player ID of current leader (-1 for tie)
	leaderHistory []int // Leader after each round
}

// LeaderDetector decides who is ahead in a snapshot.
type LeaderDetector interface {
	GetLeader(st engine.Snapshot) int     // Returns player ID or -1 for tie
	GetMargin(st engine.Snapshot) float32 // Normalized gap (0-1), 0 = tied
}

// NewTensionMetrics creates initialized tension tracker
func NewTensionMetrics(numRounds int) *TensionMetrics {
	return &TensionMetrics{
		currentLeader: -1,
		ClosestMargin: 1.0,
		leaderHistory: make([]int, 0, numRounds),
	}
}

// Update records the standings after a round.
func (tm *TensionMetrics) Update(st engine.Snapshot, d LeaderDetector) {
	leader := d.GetLeader(st)
	if leader >= 0 {
		if tm.currentLeader >= 0 && leader != tm.currentLeader {
			tm.LeadChanges++
		}
		tm.currentLeader = leader
	}
	if m := d.GetMargin(st); m < tm.ClosestMargin {
		tm.ClosestMargin = m
	}
	tm.leaderHistory = append(tm.leaderHistory, leader)
	tm.TotalRounds++
}

// Finalize computes DecisiveRound for the match winner (-1 for a shared win).
func (tm *TensionMetrics) Finalize(winner int) {
	tm.DecisiveRound = tm.TotalRounds
	if winner < 0 {
		return
	}
	for r := len(tm.leaderHistory) - 1; r >= 0 && tm.leaderHistory[r] == winner; r-- {
		tm.DecisiveRound = r + 1
	}
}

// TrailedAtHalf reports whether the winner was not leading at the midpoint.
func (tm *TensionMetrics) TrailedAtHalf(winner int) bool {
	if winner < 0 || len(tm.leaderHistory) == 0 {
		return false
	}
	return tm.leaderHistory[(len(tm.leaderHistory)-1)/2] != winner
}

// LowScoreLeaderDetector ranks by cumulative pip score; lower is ahead.
type LowScoreLeaderDetector struct{}

// GetLeader returns the seat with the lowest score, or -1 on a tie for first.
func (d *LowScoreLeaderDetector) GetLeader(st engine.Snapshot) int {
	if st.NumPlayers() < 2 {
		return -1
	}
	rank := st.Ranking()
	if rank[0].Score == rank[1].Score {
		return -1
	}
	return rank[0].Player
}

// GetMargin is the gap between first and second, scaled by the worst score.
func (d *LowScoreLeaderDetector) GetMargin(st engine.Snapshot) float32 {
	if st.NumPlayers() < 2 {
		return 0
	}
	rank := st.Ranking()
	worst := rank[len(rank)-1].Score
	if worst == 0 {
		return 0
	}
	return float32(rank[1].Score-rank[0].Score) / float32(worst)
}
