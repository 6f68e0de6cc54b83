package rule

import (
	"fmt"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

// Beats reports whether challenger beats current in a trick led in leadSuit.
// Only cards of the lead suit can win.
func Beats(challenger, current card.Card, leadSuit card.Suit) bool {
	if challenger.Suit != leadSuit {
		return false
	}
	if current.Suit != leadSuit {
		return true
	}
	return challenger.Rank > current.Rank
}

// TrickWinner returns the seat that played the highest card of the lead suit.
// It panics unless the trick is complete.
func TrickWinner(t trick.Trick) seat.Seat {
	if !t.IsComplete() {
		panic(fmt.Sprintf("rule: trick winner requested for %d plays", t.Len()))
	}
	leadCard, ok := t.LeadCard()
	if !ok {
		panic(fmt.Sprintf("rule: lead seat %s has no card in trick", t.Lead))
	}

	winner, best := t.Lead, leadCard
	for _, p := range t.Plays {
		if Beats(p.Card, best, leadCard.Suit) {
			winner, best = p.Seat, p.Card
		}
	}
	return winner
}

// TrickPoints sums the point values of the trick's cards.
func TrickPoints(t trick.Trick) int {
	return t.Cards().Points()
}

// RoundPoints sums the points of a seat's won tricks.
func RoundPoints(tricks []trick.Trick) int {
	total := 0
	for _, t := range tricks {
		total += TrickPoints(t)
	}
	return total
}
