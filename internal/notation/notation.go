// Package notation reads and writes cards and actions as short text, e.g.
// "qs", "10♥", "pass 2♣ 3♦ Q♠", "play Q♠", "moon others".
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/card"
)

var (
	ErrEmpty       = errors.New("empty input")
	ErrBadCard     = errors.New("invalid card")
	ErrCardCount   = errors.New("wrong number of cards")
	ErrBadMoon     = errors.New("moon choice must be others or self")
	ErrNoAction    = errors.New("no action in this phase")
	ErrUnknownVerb = errors.New("unknown action")
)

var suitByToken = map[string]card.Suit{
	"c": card.Clubs, "♣": card.Clubs,
	"d": card.Diamonds, "♦": card.Diamonds,
	"s": card.Spades, "♠": card.Spades,
	"h": card.Hearts, "♥": card.Hearts,
}

var rankByToken = map[string]card.Rank{
	"2": card.Rank2, "3": card.Rank3, "4": card.Rank4, "5": card.Rank5,
	"6": card.Rank6, "7": card.Rank7, "8": card.Rank8, "9": card.Rank9,
	"10": card.Rank10, "t": card.Rank10,
	"j": card.RankJ, "q": card.RankQ, "k": card.RankK, "a": card.RankA,
}

var (
	addWords      = map[string]bool{"others": true, "add": true, "+": true, "o": true}
	subtractWords = map[string]bool{"self": true, "subtract": true, "-": true, "s": true}
)

// ParseCard parses rank then suit, case-insensitive: "2h", "QS", "10♥", "t♠".
func ParseCard(s string) (card.Card, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return card.Card{}, ErrEmpty
	}

	// 花色可能是多字节符号，从尾部按 rune 拆
	runes := []rune(token)
	suitToken := string(runes[len(runes)-1])
	rankToken := string(runes[:len(runes)-1])

	suit, ok := suitByToken[suitToken]
	if !ok {
		return card.Card{}, fmt.Errorf("%w %q: unknown suit", ErrBadCard, s)
	}
	rank, ok := rankByToken[rankToken]
	if !ok {
		return card.Card{}, fmt.Errorf("%w %q: unknown rank", ErrBadCard, s)
	}
	return card.Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses whitespace or comma separated cards.
func ParseCards(s string) (card.Hand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	cards := make(card.Hand, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCard writes c in its display form, e.g. "10♥".
func FormatCard(c card.Card) string {
	return c.String()
}

// FormatCards joins cards with single spaces.
func FormatCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = FormatCard(c)
	}
	return strings.Join(parts, " ")
}

// ParseAction reads what a player typed for the given phase: three cards
// while passing, one card while playing, and a moon choice at round end.
// A leading verb ("pass", "play", "moon") is accepted but not required.
func ParseAction(input string, phase game.Phase) (game.Action, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmpty
	}

	switch phase {
	case game.PhasePassing:
		return parsePass(trimVerb(input, "pass"))
	case game.PhasePlaying:
		return parsePlay(trimVerb(input, "play"))
	case game.PhaseRoundEnd:
		return parseMoon(trimVerb(input, "moon"))
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoAction, phase)
	}
}

func trimVerb(input, verb string) string {
	fields := strings.Fields(input)
	if len(fields) > 0 && strings.EqualFold(fields[0], verb) {
		return strings.Join(fields[1:], " ")
	}
	return input
}

func parsePass(s string) (game.Action, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}
	if len(cards) != 3 {
		return nil, fmt.Errorf("%w: pass needs 3, got %d", ErrCardCount, len(cards))
	}
	return game.SelectPass{Cards: [3]card.Card(cards)}, nil
}

func parsePlay(s string) (game.Action, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}
	if len(cards) != 1 {
		return nil, fmt.Errorf("%w: play needs 1, got %d", ErrCardCount, len(cards))
	}
	return game.PlayCard{Card: cards[0]}, nil
}

func parseMoon(s string) (game.Action, error) {
	word := strings.ToLower(strings.TrimSpace(s))
	switch {
	case addWords[word]:
		return game.ChooseMoonOption{AddToOthers: true}, nil
	case subtractWords[word]:
		return game.ChooseMoonOption{AddToOthers: false}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadMoon, s)
	}
}

// FormatAction writes a in the form ParseLog reads back.
func FormatAction(a game.Action) string {
	switch a := a.(type) {
	case game.SelectPass:
		return "pass " + FormatCards(a.Cards[:])
	case game.PlayCard:
		return "play " + FormatCard(a.Card)
	case game.ChooseMoonOption:
		if a.AddToOthers {
			return "moon others"
		}
		return "moon self"
	default:
		return fmt.Sprintf("unknown %T", a)
	}
}

// ParseLog reads one line written by FormatAction. Unlike ParseAction the
// verb is required, since the phase is not known.
func ParseLog(line string) (game.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	rest := strings.Join(fields[1:], " ")

	switch strings.ToLower(fields[0]) {
	case "pass":
		return parsePass(rest)
	case "play":
		return parsePlay(rest)
	case "moon":
		return parseMoon(rest)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVerb, fields[0])
	}
}

// ParseLogs reads a whole action log, one action per line.
func ParseLogs(lines []string) ([]game.Action, error) {
	actions := make([]game.Action, 0, len(lines))
	for i, line := range lines {
		a, err := ParseLog(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
