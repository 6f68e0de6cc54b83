package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

func cd(s card.Suit, r card.Rank) card.Card {
	return card.Card{Suit: s, Rank: r}
}

func suit(s card.Suit, ranks ...card.Rank) card.Hand {
	h := make(card.Hand, len(ranks))
	for i, r := range ranks {
		h[i] = cd(s, r)
	}
	return h
}

// passFirstThree has every seat pass the first three cards of its hand.
func passFirstThree(t *testing.T, g *GameState) *GameState {
	t.Helper()
	for range seat.Count {
		hand := g.Player(g.Current).Hand
		next, err := Apply(g, SelectPass{Cards: [3]card.Card{hand[0], hand[1], hand[2]}}, nil)
		require.NoError(t, err)
		g = next
	}
	require.Equal(t, PhasePlaying, g.Phase)
	return g
}

// newPlaying builds a mid-round state from explicit hands. won gives the
// tricks already taken by each seat.
func newPlaying(hands [seat.Count]card.Hand, current seat.Seat, won [seat.Count][]trick.Trick) *GameState {
	g := &GameState{
		ID:      "test",
		Phase:   PhasePlaying,
		Current: current,
	}
	for i := range hands {
		g.Players[i].Hand = hands[i].Sorted()
		g.Players[i].TricksWon = won[i]
	}
	t := trick.New(current)
	g.Trick = &t
	return g
}

func mustApply(t *testing.T, g *GameState, a Action, rng *rand.Rand) *GameState {
	t.Helper()
	next, err := Apply(g, a, rng)
	require.NoError(t, err, "apply %s", a)
	require.NotNil(t, next)
	return next
}

// moonTricks returns two tricks that hold all 13 hearts and the queen of spades.
func moonTricks() []trick.Trick {
	hearts := trick.New(0)
	for r := card.Rank2; r <= card.RankA; r++ {
		hearts = hearts.With(0, cd(card.Hearts, r))
	}
	queen := trick.New(0).With(0, card.QueenOfSpades)
	return []trick.Trick{hearts, queen}
}
