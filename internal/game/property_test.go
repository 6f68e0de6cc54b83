package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
)

// maxActions bounds a single game; first-valid play finishes well under it.
const maxActions = 1000

func TestRandomGames_Invariants(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			rng := card.NewRand(seed)
			choose := card.NewRand(seed * 31)
			g := NewGame(rng, "")

			for steps := 0; g.Phase != PhaseGameEnd; steps++ {
				require.Less(t, steps, 20*maxActions, "game did not end")
				require.NoError(t, g.CheckCards())

				actions := ValidActions(g)
				require.NotEmpty(t, actions, "phase %s round %d", g.Phase, g.Round)

				if g.Phase == PhasePlaying {
					hand := g.Hand(g.Current)
					for _, c := range g.LegalPlays() {
						assert.True(t, hand.Contains(c))
					}
				}

				before := g.Scores()
				a := actions[choose.IntN(len(actions))]
				next, err := Apply(g, a, rng)
				require.NoError(t, err, "valid action %s rejected", a)

				if next.Round != g.Round || next.Phase == PhaseGameEnd {
					assertRoundScored(t, g, before, next)
				}
				g = next
			}

			assert.NotEmpty(t, g.Winners())
		})
	}
}

// assertRoundScored checks that a finished round moved the scores by the
// amount the Hearts scoring rules allow.
func assertRoundScored(t *testing.T, prev *GameState, before [4]int, next *GameState) {
	t.Helper()

	delta := 0
	after := next.Scores()
	for i := range after {
		delta += after[i] - before[i]
	}

	switch prev.Phase {
	case PhaseRoundEnd:
		// 射月：+78 给其他三人，或自己 -26
		assert.Contains(t, []int{3 * rule.MoonPoints, -rule.MoonPoints}, delta)
	default:
		assert.Equal(t, rule.RoundPointsTotal, delta)
	}
}

func TestFirstValidPlay_Terminates(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{0, 1, 42, 1234, 99999} {
		rng := card.NewRand(seed)
		g := NewGame(rng, "")

		n := 0
		for ; g.Phase != PhaseGameEnd; n++ {
			require.Less(t, n, maxActions, "seed %d", seed)
			g = mustApply(t, g, ValidActions(g)[0], rng)
		}
		assert.GreaterOrEqual(t, max(g.Scores()[0], g.Scores()[1], g.Scores()[2], g.Scores()[3]), LosingScore)
	}
}

func TestRejectedActions_LeaveStateUntouched(t *testing.T) {
	t.Parallel()

	rng := card.NewRand(17)
	g := NewGame(rng, "immut")
	for range 40 {
		before := g.Clone()
		for _, a := range []Action{
			PlayCard{Card: card.QueenOfSpades},
			ChooseMoonOption{AddToOthers: true},
			SelectPass{Cards: [3]card.Card{card.TwoOfClubs, card.TwoOfClubs, card.TwoOfClubs}},
		} {
			_, _ = Apply(g, a, rng)
			require.Equal(t, before, g)
		}
		next := mustApply(t, g, ValidActions(g)[0], rng)
		require.Equal(t, before, g, "accepted action must not touch its input")
		g = next
	}
}
