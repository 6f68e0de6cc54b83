package player

import (
	"fmt"
	"math/rand/v2"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
)

// New creates a bot of the given kind. rng is only used by random bots and
// may be nil for the others.
func New(kind Kind, rng *rand.Rand) (Player, error) {
	switch kind {
	case KindRandom:
		if rng == nil {
			rng = card.NewEntropyRand()
		}
		return NewRandomBot(rng), nil
	case KindSimple:
		return NewSimpleBot(), nil
	case KindFirst:
		return FirstBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot kind %q", kind)
	}
}

// FirstBot always takes the first option it is given.
type FirstBot struct{}

func (FirstBot) Name() string { return string(KindFirst) }

func (FirstBot) PassCards(hand card.Hand) ([3]card.Card, error) {
	if len(hand) < 3 {
		return [3]card.Card{}, ErrHandTooSmall
	}
	return [3]card.Card{hand[0], hand[1], hand[2]}, nil
}

func (FirstBot) PlayCard(_, legal card.Hand) (card.Card, error) {
	if len(legal) == 0 {
		return card.Card{}, ErrNoLegalCards
	}
	return legal[0], nil
}

func (FirstBot) ChooseMoon(seat.Seat, [seat.Count]int) bool { return true }

// RandomBot picks uniformly with a caller-owned generator.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (b *RandomBot) Name() string { return string(KindRandom) }

func (b *RandomBot) PassCards(hand card.Hand) ([3]card.Card, error) {
	if len(hand) < 3 {
		return [3]card.Card{}, ErrHandTooSmall
	}
	idx := b.rng.Perm(len(hand))
	return [3]card.Card{hand[idx[0]], hand[idx[1]], hand[idx[2]]}, nil
}

func (b *RandomBot) PlayCard(_, legal card.Hand) (card.Card, error) {
	if len(legal) == 0 {
		return card.Card{}, ErrNoLegalCards
	}
	return legal[b.rng.IntN(len(legal))], nil
}

func (b *RandomBot) ChooseMoon(seat.Seat, [seat.Count]int) bool {
	return b.rng.IntN(2) == 0
}
