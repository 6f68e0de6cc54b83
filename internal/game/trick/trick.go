// Package trick records the cards played into a single trick.
package trick

import (
	"fmt"
	"strings"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
)

// Size is the number of plays in a complete trick.
const Size = seat.Count

// Play is one card played by one seat.
type Play struct {
	Seat seat.Seat
	Card card.Card
}

// Trick is an ordered, possibly partial, record of plays. The zero value is
// an empty trick led by seat 0. Trick is a value type: With returns a copy.
type Trick struct {
	Lead  seat.Seat
	Plays []Play
}

// New returns an empty trick led by lead.
func New(lead seat.Seat) Trick {
	return Trick{Lead: lead}
}

// With returns a new trick with s playing c. The first play fixes the lead.
func (t Trick) With(s seat.Seat, c card.Card) Trick {
	plays := make([]Play, len(t.Plays), len(t.Plays)+1)
	copy(plays, t.Plays)
	plays = append(plays, Play{Seat: s, Card: c})
	lead := t.Lead
	if len(t.Plays) == 0 {
		lead = s
	}
	return Trick{Lead: lead, Plays: plays}
}

// Clone returns an independent copy.
func (t Trick) Clone() Trick {
	out := Trick{Lead: t.Lead}
	if t.Plays != nil {
		out.Plays = append([]Play(nil), t.Plays...)
	}
	return out
}

func (t Trick) Len() int {
	return len(t.Plays)
}

func (t Trick) IsEmpty() bool {
	return len(t.Plays) == 0
}

func (t Trick) IsComplete() bool {
	return len(t.Plays) == Size
}

// CardOf returns the card played by s, if any.
func (t Trick) CardOf(s seat.Seat) (card.Card, bool) {
	for _, p := range t.Plays {
		if p.Seat == s {
			return p.Card, true
		}
	}
	return card.Card{}, false
}

// LeadCard returns the lead seat's card, if it has played.
func (t Trick) LeadCard() (card.Card, bool) {
	return t.CardOf(t.Lead)
}

// Cards returns the played cards in play order.
func (t Trick) Cards() card.Hand {
	cards := make(card.Hand, len(t.Plays))
	for i, p := range t.Plays {
		cards[i] = p.Card
	}
	return cards
}

func (t Trick) String() string {
	parts := make([]string, len(t.Plays))
	for i, p := range t.Plays {
		parts[i] = fmt.Sprintf("%s:%s", p.Seat, p.Card)
	}
	return fmt.Sprintf("lead=%s [%s]", t.Lead, strings.Join(parts, " "))
}
