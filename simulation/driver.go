package simulation

import (
	"errors"
	"fmt"

	"github.com/signalnine/double12/engine"
)

// maxStepsPerTurn bounds one seat's actions; a real turn needs at most a
// handful (play, satisfy, draw, pass).
const maxStepsPerTurn = 64

var ErrTurnStuck = errors.New("turn did not end")

// TakeTurn plays out player's whole turn the way a table driver does: take
// the policy's pick only if it is in the live legal list (else the first
// legal move), end the turn after a play unless a double is pending, and
// draw or pass when nothing fits.
func TakeTurn(e *engine.Engine, player int, pick Picker, metrics *GameMetrics) error {
	for step := 0; step < maxStepsPerTurn; step++ {
		st := e.State()
		if st.RoundOver() || st.MatchOver() || st.CurrentPlayer() != player {
			return nil
		}

		legal, err := e.LegalMoves(player)
		if err != nil {
			return err
		}
		metrics.TotalDecisions++
		metrics.TotalValidMoves += uint64(len(legal))
		if len(legal) == 1 {
			metrics.ForcedDecisions++
		}

		if len(legal) == 0 {
			if st.DeckSize() > 0 && !st.TurnHasDrawn() {
				_, err = e.Draw(player)
				metrics.TotalDraws++
			} else {
				_, err = e.Pass(player)
				metrics.TotalPasses++
			}
			metrics.TotalActions++
			if err != nil {
				return fmt.Errorf("P%d stuck: %w", player, err)
			}
			continue
		}

		move := legal[0]
		if picked, ok := pick(e, player); ok && containsMove(legal, picked) {
			move = picked
		} else {
			metrics.OverriddenPicks++
		}

		st, err = e.PlayTile(player, move.TileID, move.Target)
		if err != nil {
			return fmt.Errorf("P%d play %s on %s: %w", player, move.Tile, move.Target, err)
		}
		metrics.TotalActions++
		if move.Tile.IsDouble() {
			metrics.DoublesPlayed++
		}
		if !move.Target.IsHub() && move.Target != engine.PlayerKey(player) {
			metrics.TotalInteractions++
		}

		if _, pending := st.Pending(); !pending && !st.RoundOver() && st.CurrentPlayer() == player {
			if _, err := e.Pass(player); err != nil {
				return fmt.Errorf("P%d end turn: %w", player, err)
			}
			metrics.TotalPasses++
			metrics.TotalActions++
		}
	}
	return fmt.Errorf("P%d: %w", player, ErrTurnStuck)
}

func containsMove(legal []engine.Move, m engine.Move) bool {
	for _, l := range legal {
		if l.TileID == m.TileID && l.Target == m.Target {
			return true
		}
	}
	return false
}
