package game

import (
	"fmt"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

// Phase 游戏阶段
type Phase int

const (
	PhasePassing Phase = iota
	PhasePlaying
	PhaseRoundEnd
	PhaseGameEnd
)

var phaseNames = map[Phase]string{
	PhasePassing:  "passing",
	PhasePlaying:  "playing",
	PhaseRoundEnd: "round_end",
	PhaseGameEnd:  "game_end",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, error) {
	for p, name := range phaseNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

// PlayerState 单个座位的状态
type PlayerState struct {
	Hand       card.Hand
	Score      int // 累计分
	RoundScore int // 最近一局得分
	TricksWon  []trick.Trick
}

func (p PlayerState) clone() PlayerState {
	out := PlayerState{
		Hand:       p.Hand.Clone(),
		Score:      p.Score,
		RoundScore: p.RoundScore,
	}
	if p.TricksWon != nil {
		out.TricksWon = make([]trick.Trick, len(p.TricksWon))
		for i, t := range p.TricksWon {
			out.TricksWon[i] = t.Clone()
		}
	}
	return out
}

// GameState is the aggregate root of one game. The engine never mutates a
// GameState it was given; every accepted action yields a new one.
type GameState struct {
	ID           string
	Phase        Phase
	Round        int
	Dealer       seat.Seat
	Players      [seat.Count]PlayerState
	Trick        *trick.Trick // nil while passing
	Current      seat.Seat
	HeartsBroken bool

	// PendingPasses holds each seat's selection until all four are in.
	PendingPasses [seat.Count]*[3]card.Card
}

// Clone returns a deep copy.
func (g *GameState) Clone() *GameState {
	out := *g
	for i := range g.Players {
		out.Players[i] = g.Players[i].clone()
	}
	if g.Trick != nil {
		t := g.Trick.Clone()
		out.Trick = &t
	}
	for i, p := range g.PendingPasses {
		if p != nil {
			sel := *p
			out.PendingPasses[i] = &sel
		}
	}
	return &out
}

// Player returns the state of seat s.
func (g *GameState) Player(s seat.Seat) *PlayerState {
	if !s.Valid() {
		panic(fmt.Sprintf("game: invalid seat %d", int(s)))
	}
	return &g.Players[s]
}

// Hand returns a copy of seat s's hand.
func (g *GameState) Hand(s seat.Seat) card.Hand {
	return g.Player(s).Hand.Clone()
}

func (g *GameState) Score(s seat.Seat) int {
	return g.Player(s).Score
}

func (g *GameState) RoundScore(s seat.Seat) int {
	return g.Player(s).RoundScore
}

func (g *GameState) TricksWon(s seat.Seat) []trick.Trick {
	return g.Player(s).TricksWon
}

// Scores returns every seat's cumulative score.
func (g *GameState) Scores() [seat.Count]int {
	var scores [seat.Count]int
	for i, p := range g.Players {
		scores[i] = p.Score
	}
	return scores
}

// CurrentTrick returns the active trick; ok is false while passing.
func (g *GameState) CurrentTrick() (trick.Trick, bool) {
	if g.Trick == nil {
		return trick.Trick{}, false
	}
	return *g.Trick, true
}

// PassDirection is the pass direction of the active round.
func (g *GameState) PassDirection() rule.PassDirection {
	return rule.PassDirectionForRound(g.Round)
}

func (g *GameState) hands() [seat.Count]card.Hand {
	var hands [seat.Count]card.Hand
	for i, p := range g.Players {
		hands[i] = p.Hand
	}
	return hands
}

func (g *GameState) tricksWon() [seat.Count][]trick.Trick {
	var won [seat.Count][]trick.Trick
	for i, p := range g.Players {
		won[i] = p.TricksWon
	}
	return won
}

// TwoOfClubsHolder returns the seat holding the two of clubs.
func (g *GameState) TwoOfClubsHolder() seat.Seat {
	return rule.TwoOfClubsHolder(g.hands())
}

// IsFirstTrick reports whether no trick has been won yet this round.
func (g *GameState) IsFirstTrick() bool {
	return rule.IsFirstTrick(g.tricksWon())
}

// MoonShooter returns the seat that took every point card this round.
func (g *GameState) MoonShooter() (seat.Seat, bool) {
	return rule.MoonShooter(g.tricksWon())
}

// LegalPlays returns the cards the current seat may play. Empty outside
// the playing phase.
func (g *GameState) LegalPlays() card.Hand {
	if g.Phase != PhasePlaying {
		return nil
	}
	return rule.LegalPlays(g.Player(g.Current).Hand, g.activeTrick(), g.IsFirstTrick(), g.HeartsBroken)
}

func (g *GameState) activeTrick() trick.Trick {
	if g.Trick == nil {
		return trick.New(g.Current)
	}
	return *g.Trick
}

// CheckCards verifies card conservation: hands, the active trick and won
// tricks together hold each of the 52 cards exactly once.
func (g *GameState) CheckCards() error {
	seen := make(map[card.Card]int, 52)
	for _, p := range g.Players {
		for _, c := range p.Hand {
			seen[c]++
		}
		for _, t := range p.TricksWon {
			for _, c := range t.Cards() {
				seen[c]++
			}
		}
	}
	if g.Trick != nil {
		for _, c := range g.Trick.Cards() {
			seen[c]++
		}
	}

	for _, c := range card.NewDeck() {
		switch n := seen[c]; n {
		case 1:
		case 0:
			return fmt.Errorf("card %s is missing", c)
		default:
			return fmt.Errorf("card %s appears %d times", c, n)
		}
	}
	if len(seen) != 52 {
		return fmt.Errorf("found %d distinct cards, want 52", len(seen))
	}
	return nil
}
