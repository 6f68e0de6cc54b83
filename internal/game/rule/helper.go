package rule

import (
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
)

// PassDirection 传牌方向
type PassDirection int

const (
	PassLeft PassDirection = iota
	PassRight
	PassAcross
	PassHold
)

// passCycle 每四局循环一次
var passCycle = [4]PassDirection{PassLeft, PassRight, PassAcross, PassHold}

var passDirectionNames = map[PassDirection]string{
	PassLeft:   "left",
	PassRight:  "right",
	PassAcross: "across",
	PassHold:   "hold",
}

var passOffsets = map[PassDirection]int{
	PassLeft:   1,
	PassRight:  3,
	PassAcross: 2,
	PassHold:   0,
}

func (d PassDirection) String() string {
	if name, ok := passDirectionNames[d]; ok {
		return name
	}
	return "unknown"
}

// PassDirectionForRound returns the direction for a 0-indexed round.
func PassDirectionForRound(round int) PassDirection {
	return passCycle[((round%4)+4)%4]
}

// PassTarget returns the seat that receives s's passed cards.
// On a hold round the target is s itself.
func PassTarget(s seat.Seat, d PassDirection) seat.Seat {
	return s.Offset(passOffsets[d])
}

// LegalPasses returns every 3-card combination from the hand.
func LegalPasses(hand card.Hand) [][3]card.Card {
	return hand.Combinations3()
}

// TwoOfClubsHolder returns the seat holding the two of clubs.
// It panics if no hand holds it; every deal places it somewhere.
func TwoOfClubsHolder(hands [seat.Count]card.Hand) seat.Seat {
	for _, s := range seat.All {
		if hands[s].Contains(card.TwoOfClubs) {
			return s
		}
	}
	panic("rule: no player holds the two of clubs")
}
