package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
	"github.com/palemoky/hearts/internal/game/trick"
)

func applyPlay(s *GameState, c card.Card, rng *rand.Rand) (*GameState, error) {
	if s.Phase != PhasePlaying {
		return nil, apperrors.ErrNotPlaying
	}

	player := s.Current
	hand := s.Player(player).Hand
	if !hand.Contains(c) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCardNotInHand, c)
	}
	if !s.LegalPlays().Contains(c) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidPlay, c)
	}

	next := s.Clone()
	next.Players[player].Hand = hand.Remove(c)
	t := next.activeTrick().With(player, c)
	next.Trick = &t
	if c.Suit == card.Hearts {
		next.HeartsBroken = true
	}

	if t.IsComplete() {
		next.completeTrick(rng)
	} else {
		next.Current = player.Next()
	}
	return next, nil
}

// completeTrick 结算一墩：赢家收牌并领出下一墩
func (g *GameState) completeTrick(rng *rand.Rand) {
	done := *g.Trick
	winner := rule.TrickWinner(done)
	g.Players[winner].TricksWon = append(g.Players[winner].TricksWon, done)

	t := trick.New(winner)
	g.Trick = &t
	g.Current = winner

	if g.allHandsEmpty() {
		g.completeRound(rng)
	}
}

func (g *GameState) allHandsEmpty() bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}
