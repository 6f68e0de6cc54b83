// Package rule holds the pure Hearts rules: which cards may be led, followed
// or passed, who wins a trick, and how a round is scored.
package rule

import (
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

const (
	// RoundPointsTotal is the number of points dealt out every round.
	RoundPointsTotal = 26
	// MoonPoints is the swing applied when a player shoots the moon.
	MoonPoints = 26
)

// restriction narrows a legal set. An empty result means the restriction is
// waived and the previous set stands.
type restriction func(card.Hand) card.Hand

func mustFollow(suit card.Suit) restriction {
	return func(h card.Hand) card.Hand { return h.OfSuit(suit) }
}

func noPointCards(h card.Hand) card.Hand {
	return h.Filter(func(c card.Card) bool { return !c.IsPointCard() })
}

func noHearts(h card.Hand) card.Hand {
	return h.NotOfSuit(card.Hearts)
}

func applyRestrictions(hand card.Hand, restrictions ...restriction) card.Hand {
	legal := hand.Clone()
	for _, restrict := range restrictions {
		if narrowed := restrict(legal); len(narrowed) > 0 {
			legal = narrowed
		}
	}
	return legal
}

// LegalLeads returns the cards that may open a trick.
// On the first trick only the two of clubs may be led; the hand must hold it.
func LegalLeads(hand card.Hand, firstTrick, heartsBroken bool) card.Hand {
	if firstTrick {
		if !hand.Contains(card.TwoOfClubs) {
			panic("rule: first lead from a hand without the two of clubs")
		}
		return card.Hand{card.TwoOfClubs}
	}
	if heartsBroken {
		return hand.Clone()
	}
	return applyRestrictions(hand, noHearts)
}

// LegalFollows returns the cards that may be played to a trick led in leadSuit.
func LegalFollows(hand card.Hand, leadSuit card.Suit, firstTrick bool) card.Hand {
	if hand.HasSuit(leadSuit) {
		return hand.OfSuit(leadSuit)
	}
	if firstTrick {
		return applyRestrictions(hand, noPointCards)
	}
	return hand.Clone()
}

// LegalPlays dispatches to LegalLeads or LegalFollows depending on whether
// the trick already has a lead card.
func LegalPlays(hand card.Hand, t trick.Trick, firstTrick, heartsBroken bool) card.Hand {
	leadCard, ok := t.LeadCard()
	if !ok {
		return LegalLeads(hand, firstTrick, heartsBroken)
	}
	return LegalFollows(hand, leadCard.Suit, firstTrick)
}

// IsFirstTrick reports whether no seat has won a trick yet this round.
func IsFirstTrick(tricksWon [seat.Count][]trick.Trick) bool {
	for _, won := range tricksWon {
		if len(won) > 0 {
			return false
		}
	}
	return true
}

// MoonShooter returns the seat that took all 26 points, if any.
func MoonShooter(tricksWon [seat.Count][]trick.Trick) (seat.Seat, bool) {
	for _, s := range seat.All {
		if RoundPoints(tricksWon[s]) == RoundPointsTotal {
			return s, true
		}
	}
	return 0, false
}
