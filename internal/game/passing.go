package game

import (
	"fmt"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

func applyPass(s *GameState, cards [3]card.Card) (*GameState, error) {
	if s.Phase != PhasePassing {
		return nil, apperrors.ErrNotPassing
	}
	if s.PassDirection() == rule.PassHold {
		return nil, apperrors.ErrHoldRound
	}

	player := s.Current
	hand := s.Player(player).Hand
	if !hand.ContainsAll(cards[:]...) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCardsNotInHand, card.Hand(cards[:]))
	}
	if cards[0] == cards[1] || cards[1] == cards[2] || cards[0] == cards[2] {
		return nil, apperrors.ErrDuplicateCards
	}

	next := s.Clone()
	selection := cards
	next.PendingPasses[player] = &selection

	if next.allPassesSelected() {
		next.executePasses()
		next.startPlaying()
	} else {
		next.Current = next.nextPasser()
	}
	return next, nil
}

func (g *GameState) allPassesSelected() bool {
	for _, p := range g.PendingPasses {
		if p == nil {
			return false
		}
	}
	return true
}

// nextPasser 从下家开始找第一个还没选牌的座位
func (g *GameState) nextPasser() seat.Seat {
	for i := 1; i <= seat.Count; i++ {
		s := g.Current.Offset(i)
		if g.PendingPasses[s] == nil {
			return s
		}
	}
	return g.Current
}

// executePasses removes every selection first, then hands each to its target.
func (g *GameState) executePasses() {
	direction := g.PassDirection()
	var received [seat.Count][]card.Card

	for _, s := range seat.All {
		selection := g.PendingPasses[s]
		target := rule.PassTarget(s, direction)
		received[target] = append(received[target], selection[:]...)
		g.Players[s].Hand = g.Players[s].Hand.Remove(selection[:]...)
	}
	for _, s := range seat.All {
		g.Players[s].Hand = g.Players[s].Hand.Add(received[s]...)
	}
	g.PendingPasses = [seat.Count]*[3]card.Card{}
}

// startPlaying hands the lead to whoever holds the two of clubs.
func (g *GameState) startPlaying() {
	holder := g.TwoOfClubsHolder()
	t := trick.New(holder)
	g.Phase = PhasePlaying
	g.Current = holder
	g.Trick = &t
}
