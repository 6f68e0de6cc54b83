// Package player defines the seat-side capability the table asks for
// decisions, and the built-in bots.
package player

import (
	"errors"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

var (
	ErrHandTooSmall = errors.New("hand has fewer than 3 cards")
	ErrNoLegalCards = errors.New("no legal cards")
)

// Player 一个座位的决策者（人或机器人）
type Player interface {
	Name() string
	// PassCards picks 3 distinct cards from hand.
	PassCards(hand card.Hand) ([3]card.Card, error)
	// PlayCard picks one card out of legal.
	PlayCard(hand, legal card.Hand) (card.Card, error)
}

// MoonChooser is implemented by players that want to decide the moon
// option themselves. Players without it always add to the others.
type MoonChooser interface {
	ChooseMoon(self seat.Seat, scores [seat.Count]int) bool
}

// Observer is implemented by players that look at the table before
// deciding. The table calls Observe right before PassCards or PlayCard.
type Observer interface {
	Observe(v View)
}

// View is the public part of the table as seen from one seat.
type View struct {
	Seat          seat.Seat
	Round         int
	PassDirection rule.PassDirection
	Trick         trick.Trick
	FirstTrick    bool
	HeartsBroken  bool
	// Played are the cards in tricks already won this round.
	Played card.Hand
	Scores [seat.Count]int
}

// Kind 机器人类型
type Kind string

const (
	KindRandom Kind = "random"
	KindSimple Kind = "simple"
	KindFirst  Kind = "first"
)
