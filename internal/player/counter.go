package player

import "github.com/palemoky/hearts/internal/game/card"

// CardCounter 记牌器：记录自己看不到、也还没打出的牌
type CardCounter struct {
	unseen map[card.Card]bool
}

// NewCardCounter creates a counter holding the full deck.
func NewCardCounter() *CardCounter {
	cc := &CardCounter{unseen: make(map[card.Card]bool, 52)}
	cc.Reset(nil)
	return cc
}

// Reset starts a new round: every card is unseen except those in hand.
func (cc *CardCounter) Reset(hand card.Hand) {
	clear(cc.unseen)
	for _, c := range card.NewDeck() {
		cc.unseen[c] = true
	}
	cc.DeductCards(hand)
}

// DeductCards marks cards as seen.
func (cc *CardCounter) DeductCards(cards []card.Card) {
	for _, c := range cards {
		delete(cc.unseen, c)
	}
}

// IsOut reports whether c could still be in an opponent's hand.
func (cc *CardCounter) IsOut(c card.Card) bool {
	return cc.unseen[c]
}

// Remaining returns the number of unseen cards per suit.
func (cc *CardCounter) Remaining() map[card.Suit]int {
	out := make(map[card.Suit]int, len(card.Suits))
	for _, s := range card.Suits {
		out[s] = 0
	}
	for c := range cc.unseen {
		out[c.Suit]++
	}
	return out
}

// Len is the total number of unseen cards.
func (cc *CardCounter) Len() int {
	return len(cc.unseen)
}
