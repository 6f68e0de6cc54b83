package player

import (
	"cmp"
	"slices"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

// losingScore mirrors the engine's end-of-game threshold.
const losingScore = 100

// SimpleBot 简单策略：送出危险牌，尽量不吃分
type SimpleBot struct {
	view    View
	counter *CardCounter
}

func NewSimpleBot() *SimpleBot {
	return &SimpleBot{counter: NewCardCounter()}
}

func (b *SimpleBot) Name() string { return string(KindSimple) }

func (b *SimpleBot) Observe(v View) {
	b.view = v
}

// PassCards passes the queen of spades, high spades and high hearts first,
// then tries to void a short minor suit.
func (b *SimpleBot) PassCards(hand card.Hand) ([3]card.Card, error) {
	if len(hand) < 3 {
		return [3]card.Card{}, ErrHandTooSmall
	}

	suitLen := make(map[card.Suit]int, len(card.Suits))
	for _, c := range hand {
		suitLen[c.Suit]++
	}

	ranked := hand.Sorted()
	slices.SortStableFunc(ranked, func(a, c card.Card) int {
		return cmp.Compare(passDanger(c, suitLen), passDanger(a, suitLen))
	})
	return [3]card.Card{ranked[0], ranked[1], ranked[2]}, nil
}

func passDanger(c card.Card, suitLen map[card.Suit]int) int {
	rank := int(c.Rank)
	switch {
	case c == card.QueenOfSpades:
		return 100
	case c.Suit == card.Spades && c.Rank > card.RankQ:
		return 80 + rank
	case c.Suit == card.Hearts && c.Rank >= card.RankJ:
		return 60 + rank
	case c.Suit != card.Spades && c.Suit != card.Hearts && suitLen[c.Suit] <= 2:
		return 40 + rank
	default:
		return rank
	}
}

func (b *SimpleBot) PlayCard(hand, legal card.Hand) (card.Card, error) {
	if len(legal) == 0 {
		return card.Card{}, ErrNoLegalCards
	}
	if len(legal) == 1 {
		return legal[0], nil
	}
	b.track(hand)

	lead, ok := b.view.Trick.LeadCard()
	if !ok {
		return b.lead(legal), nil
	}
	if legal[0].Suit == lead.Suit {
		return b.follow(legal, lead.Suit), nil
	}
	return discard(legal), nil
}

// track rebuilds the counter from the hand and everything played so far.
func (b *SimpleBot) track(hand card.Hand) {
	b.counter.Reset(hand)
	b.counter.DeductCards(b.view.Played)
	b.counter.DeductCards(b.view.Trick.Cards())
}

// lead 领出最小的安全牌；Q♠ 还在外面时不领高黑桃
func (b *SimpleBot) lead(legal card.Hand) card.Card {
	safe := legal.Filter(func(c card.Card) bool {
		if c == card.QueenOfSpades {
			return false
		}
		if c.Suit == card.Spades && c.Rank > card.RankQ && b.counter.IsOut(card.QueenOfSpades) {
			return false
		}
		return c.Suit != card.Hearts
	})
	if len(safe) == 0 {
		safe = legal
	}
	return lowest(safe)
}

// follow plays the highest card that still loses, else the lowest one.
// The last seat takes a pointless trick with its highest card.
func (b *SimpleBot) follow(legal card.Hand, suit card.Suit) card.Card {
	winning := highestOfSuit(b.view.Trick, suit)

	if b.view.Trick.Len() == trick.Size-1 && b.view.Trick.Cards().Points() == 0 {
		top := legal.Filter(func(c card.Card) bool { return c != card.QueenOfSpades })
		if len(top) > 0 {
			return highest(top)
		}
	}

	under := legal.Filter(func(c card.Card) bool { return c.Rank < winning.Rank })
	if len(under) > 0 {
		return highest(under)
	}
	return lowest(legal)
}

// discard 缺门时先垫 Q♠，再垫大红心，最后垫最大的牌
func discard(legal card.Hand) card.Card {
	if legal.Contains(card.QueenOfSpades) {
		return card.QueenOfSpades
	}
	if hearts := legal.OfSuit(card.Hearts); len(hearts) > 0 {
		return highest(hearts)
	}
	return highest(legal)
}

// ChooseMoon adds to the others unless that ends the game with someone
// else lower than the shooter.
func (b *SimpleBot) ChooseMoon(self seat.Seat, scores [seat.Count]int) bool {
	ends := false
	lowestOther := 0
	first := true
	for _, s := range seat.All {
		if s == self {
			continue
		}
		after := scores[s] + rule.MoonPoints
		if after >= losingScore {
			ends = true
		}
		if first || after < lowestOther {
			lowestOther = after
			first = false
		}
	}
	if !ends {
		return true
	}
	return scores[self] < lowestOther
}

func highestOfSuit(t trick.Trick, suit card.Suit) card.Card {
	var best card.Card
	for _, c := range t.Cards().OfSuit(suit) {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

func lowest(h card.Hand) card.Card {
	return slices.MinFunc(h, byRankThenSuit)
}

func highest(h card.Hand) card.Card {
	return slices.MaxFunc(h, byRankThenSuit)
}

func byRankThenSuit(a, b card.Card) int {
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return cmp.Compare(a.Suit, b.Suit)
}
