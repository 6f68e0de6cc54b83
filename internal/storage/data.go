package storage

import (
	"fmt"

	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
	"github.com/palemoky/hearts/internal/notation"
)

// GameData 牌局快照（用于 Redis 序列化），牌用文本表示
type GameData struct {
	ID            string       `json:"id"`
	Phase         string       `json:"phase"`
	Round         int          `json:"round"`
	Dealer        int          `json:"dealer"`
	Current       int          `json:"current"`
	HeartsBroken  bool         `json:"hearts_broken"`
	Players       []PlayerData `json:"players"`
	Trick         *TrickData   `json:"trick,omitempty"`
	PendingPasses [][]string   `json:"pending_passes"` // 未选牌的座位为 null
	SavedAt       int64        `json:"saved_at"`
}

// PlayerData 座位数据
type PlayerData struct {
	Seat       int         `json:"seat"`
	Hand       []string    `json:"hand"`
	Score      int         `json:"score"`
	RoundScore int         `json:"round_score"`
	TricksWon  []TrickData `json:"tricks_won"`
}

// TrickData 一墩牌
type TrickData struct {
	Lead  int        `json:"lead"`
	Plays []PlayData `json:"plays"`
}

// PlayData 一次出牌
type PlayData struct {
	Seat int    `json:"seat"`
	Card string `json:"card"`
}

// FromState converts s into its storable form.
func FromState(s *game.GameState) *GameData {
	data := &GameData{
		ID:            s.ID,
		Phase:         s.Phase.String(),
		Round:         s.Round,
		Dealer:        int(s.Dealer),
		Current:       int(s.Current),
		HeartsBroken:  s.HeartsBroken,
		Players:       make([]PlayerData, 0, seat.Count),
		PendingPasses: make([][]string, seat.Count),
	}

	for _, id := range seat.All {
		p := s.Player(id)
		pd := PlayerData{
			Seat:       int(id),
			Hand:       cardStrings(p.Hand),
			Score:      p.Score,
			RoundScore: p.RoundScore,
			TricksWon:  make([]TrickData, 0, len(p.TricksWon)),
		}
		for _, t := range p.TricksWon {
			pd.TricksWon = append(pd.TricksWon, fromTrick(t))
		}
		data.Players = append(data.Players, pd)

		if sel := s.PendingPasses[id]; sel != nil {
			data.PendingPasses[id] = cardStrings(sel[:])
		}
	}

	if t, ok := s.CurrentTrick(); ok {
		td := fromTrick(t)
		data.Trick = &td
	}
	return data
}

func fromTrick(t trick.Trick) TrickData {
	td := TrickData{Lead: int(t.Lead), Plays: make([]PlayData, len(t.Plays))}
	for i, p := range t.Plays {
		td.Plays[i] = PlayData{Seat: int(p.Seat), Card: notation.FormatCard(p.Card)}
	}
	return td
}

func cardStrings(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = notation.FormatCard(c)
	}
	return out
}

// ToState rebuilds the game state. A snapshot that breaks card
// conservation is rejected.
func (d *GameData) ToState() (*game.GameState, error) {
	phase, err := game.ParsePhase(d.Phase)
	if err != nil {
		return nil, err
	}
	if len(d.Players) != seat.Count {
		return nil, fmt.Errorf("snapshot has %d players", len(d.Players))
	}
	dealer, err := seat.New(d.Dealer)
	if err != nil {
		return nil, fmt.Errorf("dealer: %w", err)
	}
	current, err := seat.New(d.Current)
	if err != nil {
		return nil, fmt.Errorf("current: %w", err)
	}

	s := &game.GameState{
		ID:           d.ID,
		Phase:        phase,
		Round:        d.Round,
		Dealer:       dealer,
		Current:      current,
		HeartsBroken: d.HeartsBroken,
	}

	for _, pd := range d.Players {
		id, err := seat.New(pd.Seat)
		if err != nil {
			return nil, fmt.Errorf("player: %w", err)
		}
		hand, err := parseCards(pd.Hand)
		if err != nil {
			return nil, fmt.Errorf("seat %d hand: %w", pd.Seat, err)
		}
		p := s.Player(id)
		p.Hand = hand.Sorted()
		p.Score = pd.Score
		p.RoundScore = pd.RoundScore
		for _, td := range pd.TricksWon {
			t, err := td.toTrick()
			if err != nil {
				return nil, fmt.Errorf("seat %d tricks: %w", pd.Seat, err)
			}
			p.TricksWon = append(p.TricksWon, t)
		}
	}

	if d.Trick != nil {
		t, err := d.Trick.toTrick()
		if err != nil {
			return nil, fmt.Errorf("trick: %w", err)
		}
		s.Trick = &t
	}

	for i, sel := range d.PendingPasses {
		if sel == nil || i >= seat.Count {
			continue
		}
		cards, err := parseCards(sel)
		if err != nil {
			return nil, fmt.Errorf("pending pass %d: %w", i, err)
		}
		if len(cards) != 3 {
			return nil, fmt.Errorf("pending pass %d has %d cards", i, len(cards))
		}
		arr := [3]card.Card(cards)
		s.PendingPasses[i] = &arr
	}

	if err := s.CheckCards(); err != nil {
		return nil, fmt.Errorf("corrupt snapshot: %w", err)
	}
	return s, nil
}

func (td TrickData) toTrick() (trick.Trick, error) {
	lead, err := seat.New(td.Lead)
	if err != nil {
		return trick.Trick{}, err
	}
	t := trick.New(lead)
	for _, p := range td.Plays {
		s, err := seat.New(p.Seat)
		if err != nil {
			return trick.Trick{}, err
		}
		c, err := notation.ParseCard(p.Card)
		if err != nil {
			return trick.Trick{}, err
		}
		t = t.With(s, c)
	}
	t.Lead = lead
	return t, nil
}

func parseCards(ss []string) (card.Hand, error) {
	out := make(card.Hand, 0, len(ss))
	for _, s := range ss {
		c, err := notation.ParseCard(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
