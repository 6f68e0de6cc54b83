package game

import (
	"math/rand/v2"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
	"github.com/palemoky/hearts/internal/game/seat"
)

// completeRound scores the round, or waits for the shooter's choice.
func (g *GameState) completeRound(rng *rand.Rand) {
	if shooter, ok := g.MoonShooter(); ok {
		g.Phase = PhaseRoundEnd
		g.Current = shooter
		return
	}

	g.applyNormalScoring()
	g.checkGameEnd(rng)
}

func (g *GameState) applyNormalScoring() {
	for i := range g.Players {
		p := &g.Players[i]
		p.RoundScore = rule.RoundPoints(p.TricksWon)
		p.Score += p.RoundScore
	}
}

func applyMoonChoice(s *GameState, addToOthers bool, rng *rand.Rand) (*GameState, error) {
	if s.Phase != PhaseRoundEnd {
		return nil, apperrors.ErrNotRoundEnd
	}
	shooter, ok := s.MoonShooter()
	if !ok || shooter != s.Current {
		return nil, apperrors.ErrNotMoonShooter
	}

	next := s.Clone()
	for _, seatID := range seat.All {
		p := next.Player(seatID)
		switch {
		case addToOthers && seatID != shooter:
			p.Score += rule.MoonPoints
			p.RoundScore = rule.MoonPoints
		case addToOthers:
			p.RoundScore = 0
		case seatID == shooter:
			p.Score -= rule.MoonPoints
			p.RoundScore = -rule.MoonPoints
		default:
			p.RoundScore = 0
		}
	}

	next.checkGameEnd(rng)
	return next, nil
}

// CheckGameEnd returns s advanced either to game end or to the next round's
// deal. s itself is not modified.
func CheckGameEnd(s *GameState, rng *rand.Rand) *GameState {
	next := s.Clone()
	next.checkGameEnd(rng)
	return next
}

func (g *GameState) checkGameEnd(rng *rand.Rand) {
	for _, p := range g.Players {
		if p.Score >= LosingScore {
			g.Phase = PhaseGameEnd
			return
		}
	}
	g.startNewRound(rng)
}

// startNewRound 重新发牌，分数保留，其余每局状态清零
func (g *GameState) startNewRound(rng *rand.Rand) {
	g.Round++
	g.Dealer = g.Dealer.Next()
	g.deal(ensureRand(rng))

	for i := range g.Players {
		g.Players[i].RoundScore = 0
		g.Players[i].TricksWon = nil
	}
	g.Trick = nil
	g.HeartsBroken = false
	g.PendingPasses = [seat.Count]*[3]card.Card{}

	if g.PassDirection() == rule.PassHold {
		g.startPlaying()
		return
	}
	g.Phase = PhasePassing
	g.Current = 0
}

// Winners returns the seats with the lowest score.
func (g *GameState) Winners() []seat.Seat {
	best := g.Players[0].Score
	for _, p := range g.Players[1:] {
		best = min(best, p.Score)
	}
	var winners []seat.Seat
	for _, s := range seat.All {
		if g.Players[s].Score == best {
			winners = append(winners, s)
		}
	}
	return winners
}
