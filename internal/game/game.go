// Package game drives a Hearts game: it validates actions against the rules
// and moves the state through passing, playing, round end and game end.
package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
	"github.com/palemoky/hearts/internal/game/seat"
)

// LosingScore ends the game once any player reaches it.
const LosingScore = 100

// HandSize 每人 13 张
const HandSize = 13

// NewGame 洗牌发牌，开始第 0 局的传牌阶段
// An empty gameID is replaced by a random UUID. rng must not be shared with
// other games if reproducibility matters.
func NewGame(rng *rand.Rand, gameID string) *GameState {
	if gameID == "" {
		gameID = uuid.NewString()
	}
	g := &GameState{
		ID:      gameID,
		Phase:   PhasePassing,
		Round:   0,
		Dealer:  0,
		Current: 0,
	}
	g.deal(ensureRand(rng))
	return g
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return card.NewEntropyRand()
	}
	return rng
}

func (g *GameState) deal(rng *rand.Rand) {
	deck := card.NewDeck()
	deck.Shuffle(rng)
	for i, hand := range deck.Deal(seat.Count) {
		g.Players[i].Hand = hand
	}
}

// Apply validates a against s and returns the resulting state. s is never
// modified; on error the caller keeps s and may retry. rng is only used when
// the action finishes a round and a new deal is needed; nil falls back to a
// freshly seeded generator.
func Apply(s *GameState, a Action, rng *rand.Rand) (*GameState, error) {
	if s.Phase == PhaseGameEnd {
		return nil, apperrors.ErrGameOver
	}

	switch a := a.(type) {
	case SelectPass:
		return applyPass(s, a.Cards)
	case PlayCard:
		return applyPlay(s, a.Card, rng)
	case ChooseMoonOption:
		return applyMoonChoice(s, a.AddToOthers, rng)
	default:
		return nil, fmt.Errorf("%w: %T", apperrors.ErrInvalidAction, a)
	}
}

// ApplyAction is Apply with the outcome folded into an ActionResult.
func ApplyAction(s *GameState, a Action, rng *rand.Rand) ActionResult {
	next, err := Apply(s, a, rng)
	if err != nil {
		return Failure{Err: err}
	}
	return Success{State: next}
}

// ValidActions lists every action the current seat may take.
func ValidActions(s *GameState) []Action {
	switch s.Phase {
	case PhasePassing:
		if s.PassDirection() == rule.PassHold {
			return nil
		}
		combos := s.Player(s.Current).Hand.Combinations3()
		actions := make([]Action, len(combos))
		for i, combo := range combos {
			actions[i] = SelectPass{Cards: combo}
		}
		return actions
	case PhasePlaying:
		legal := s.LegalPlays()
		actions := make([]Action, len(legal))
		for i, c := range legal {
			actions[i] = PlayCard{Card: c}
		}
		return actions
	case PhaseRoundEnd:
		shooter, ok := s.MoonShooter()
		if !ok || shooter != s.Current {
			return nil
		}
		return []Action{ChooseMoonOption{AddToOthers: true}, ChooseMoonOption{AddToOthers: false}}
	default:
		return nil
	}
}

// Replay starts a game with rng and applies actions in order. It returns the
// last good state and an error naming the first rejected action.
func Replay(rng *rand.Rand, gameID string, actions []Action) (*GameState, error) {
	rng = ensureRand(rng)
	s := NewGame(rng, gameID)
	for i, a := range actions {
		next, err := Apply(s, a, rng)
		if err != nil {
			return s, fmt.Errorf("action %d (%s): %w", i, a, err)
		}
		s = next
	}
	return s, nil
}
