package game

import (
	"fmt"

	"github.com/palemoky/hearts/internal/game/card"
)

// Action is one of SelectPass, PlayCard or ChooseMoonOption.
type Action interface {
	isAction()
	fmt.Stringer
}

// SelectPass 选出三张要传出的牌
type SelectPass struct {
	Cards [3]card.Card
}

// PlayCard 出一张牌
type PlayCard struct {
	Card card.Card
}

// ChooseMoonOption is the moon shooter's scoring choice: add 26 to every
// other player, or subtract 26 from themselves.
type ChooseMoonOption struct {
	AddToOthers bool
}

func (SelectPass) isAction()       {}
func (PlayCard) isAction()         {}
func (ChooseMoonOption) isAction() {}

func (a SelectPass) String() string {
	return fmt.Sprintf("SelectPass(%s)", card.Hand(a.Cards[:]))
}

func (a PlayCard) String() string {
	return fmt.Sprintf("PlayCard(%s)", a.Card)
}

func (a ChooseMoonOption) String() string {
	if a.AddToOthers {
		return "ChooseMoonOption(add to others)"
	}
	return "ChooseMoonOption(subtract from self)"
}

// ActionResult is either Success or Failure.
type ActionResult interface {
	isActionResult()
}

// Success carries the state after an accepted action.
type Success struct {
	State *GameState
}

// Failure carries the reason an action was rejected.
type Failure struct {
	Err error
}

func (Success) isActionResult() {}
func (Failure) isActionResult() {}

// Reason is the human-readable rejection reason.
func (f Failure) Reason() string {
	return f.Err.Error()
}
