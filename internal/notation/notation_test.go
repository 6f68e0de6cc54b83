package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/card"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want card.Card
	}{
		{"2h", card.Card{Suit: card.Hearts, Rank: card.Rank2}},
		{"QS", card.QueenOfSpades},
		{"10♥", card.Card{Suit: card.Hearts, Rank: card.Rank10}},
		{"t♠", card.Card{Suit: card.Spades, Rank: card.Rank10}},
		{" a♦ ", card.Card{Suit: card.Diamonds, Rank: card.RankA}},
		{"Kc", card.Card{Suit: card.Clubs, Rank: card.RankK}},
		{"J♣", card.Card{Suit: card.Clubs, Rank: card.RankJ}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCard_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1h", "11s", "qx", "h", "♥", "zz", "10"} {
		_, err := ParseCard(in)
		assert.ErrorIs(t, err, ErrBadCard, in)
	}
	_, err := ParseCard("  ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFormatCard_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range card.NewDeck() {
		got, err := ParseCard(FormatCard(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		phase game.Phase
		want  game.Action
	}{
		{
			name:  "pass without verb",
			in:    "2c 3d qs",
			phase: game.PhasePassing,
			want: game.SelectPass{Cards: [3]card.Card{
				card.TwoOfClubs, {Suit: card.Diamonds, Rank: card.Rank3}, card.QueenOfSpades,
			}},
		},
		{
			name:  "pass with verb and commas",
			in:    "pass ah,kh,qh",
			phase: game.PhasePassing,
			want: game.SelectPass{Cards: [3]card.Card{
				{Suit: card.Hearts, Rank: card.RankA},
				{Suit: card.Hearts, Rank: card.RankK},
				{Suit: card.Hearts, Rank: card.RankQ},
			}},
		},
		{name: "play", in: "qs", phase: game.PhasePlaying, want: game.PlayCard{Card: card.QueenOfSpades}},
		{name: "play verb", in: "PLAY 2♣", phase: game.PhasePlaying, want: game.PlayCard{Card: card.TwoOfClubs}},
		{name: "moon others", in: "others", phase: game.PhaseRoundEnd, want: game.ChooseMoonOption{AddToOthers: true}},
		{name: "moon plus", in: "+", phase: game.PhaseRoundEnd, want: game.ChooseMoonOption{AddToOthers: true}},
		{name: "moon self", in: "moon self", phase: game.PhaseRoundEnd, want: game.ChooseMoonOption{AddToOthers: false}},
		{name: "moon minus", in: "-", phase: game.PhaseRoundEnd, want: game.ChooseMoonOption{AddToOthers: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAction(tt.in, tt.phase)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAction_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		phase game.Phase
		want  error
	}{
		{"empty", "   ", game.PhasePlaying, ErrEmpty},
		{"two cards to pass", "2c 3c", game.PhasePassing, ErrCardCount},
		{"two cards to play", "2c 3c", game.PhasePlaying, ErrCardCount},
		{"bad card", "pass 2c 3c 1x", game.PhasePassing, ErrBadCard},
		{"bad moon", "maybe", game.PhaseRoundEnd, ErrBadMoon},
		{"game over", "2c", game.PhaseGameEnd, ErrNoAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseAction(tt.in, tt.phase)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatAction_ParseLog(t *testing.T) {
	t.Parallel()

	actions := []game.Action{
		game.SelectPass{Cards: [3]card.Card{card.TwoOfClubs, {Suit: card.Hearts, Rank: card.Rank10}, card.QueenOfSpades}},
		game.PlayCard{Card: card.QueenOfSpades},
		game.ChooseMoonOption{AddToOthers: true},
		game.ChooseMoonOption{AddToOthers: false},
	}
	want := []string{"pass 2♣ 10♥ Q♠", "play Q♠", "moon others", "moon self"}

	lines := make([]string, len(actions))
	for i, a := range actions {
		lines[i] = FormatAction(a)
	}
	assert.Equal(t, want, lines)

	parsed, err := ParseLogs(lines)
	require.NoError(t, err)
	assert.Equal(t, actions, parsed)

	_, err = ParseLogs([]string{"play q♠", "bid 3"})
	require.ErrorIs(t, err, ErrUnknownVerb)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFormatCards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FormatCards(nil))
	assert.Equal(t, "2♣ Q♠", FormatCards([]card.Card{card.TwoOfClubs, card.QueenOfSpades}))
}
