package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

func cd(s card.Suit, r card.Rank) card.Card {
	return card.Card{Suit: s, Rank: r}
}

func TestLegalLeads(t *testing.T) {
	t.Parallel()

	mixed := card.Hand{card.TwoOfClubs, cd(card.Diamonds, card.Rank9), cd(card.Hearts, card.Rank4)}
	allHearts := card.Hand{cd(card.Hearts, card.Rank4), cd(card.Hearts, card.RankK)}

	tests := []struct {
		name         string
		hand         card.Hand
		firstTrick   bool
		heartsBroken bool
		expected     card.Hand
	}{
		{"first trick only two of clubs", mixed, true, false, card.Hand{card.TwoOfClubs}},
		{"hearts excluded until broken", mixed, false, false, card.Hand{card.TwoOfClubs, cd(card.Diamonds, card.Rank9)}},
		{"anything once broken", mixed, false, true, mixed},
		{"all hearts may lead hearts", allHearts, false, false, allHearts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, LegalLeads(tt.hand, tt.firstTrick, tt.heartsBroken))
		})
	}
}

func TestLegalLeads_FirstTrickWithoutTwoOfClubsPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		LegalLeads(card.Hand{cd(card.Clubs, card.Rank3)}, true, false)
	})
}

func TestLegalFollows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		hand       card.Hand
		leadSuit   card.Suit
		firstTrick bool
		expected   card.Hand
	}{
		{
			name:     "must follow suit",
			hand:     card.Hand{cd(card.Clubs, card.Rank5), cd(card.Clubs, card.RankA), cd(card.Hearts, card.Rank2)},
			leadSuit: card.Clubs,
			expected: card.Hand{cd(card.Clubs, card.Rank5), cd(card.Clubs, card.RankA)},
		},
		{
			name:       "void on first trick excludes point cards",
			hand:       card.Hand{cd(card.Diamonds, card.Rank5), card.QueenOfSpades, cd(card.Hearts, card.Rank2)},
			leadSuit:   card.Clubs,
			firstTrick: true,
			expected:   card.Hand{cd(card.Diamonds, card.Rank5)},
		},
		{
			name:       "void on first trick with only point cards",
			hand:       card.Hand{card.QueenOfSpades, cd(card.Hearts, card.Rank2)},
			leadSuit:   card.Clubs,
			firstTrick: true,
			expected:   card.Hand{card.QueenOfSpades, cd(card.Hearts, card.Rank2)},
		},
		{
			name:     "void later may play anything",
			hand:     card.Hand{cd(card.Diamonds, card.Rank5), card.QueenOfSpades, cd(card.Hearts, card.Rank2)},
			leadSuit: card.Clubs,
			expected: card.Hand{cd(card.Diamonds, card.Rank5), card.QueenOfSpades, cd(card.Hearts, card.Rank2)},
		},
		{
			name:       "following suit on first trick is unrestricted within suit",
			hand:       card.Hand{cd(card.Spades, card.Rank3), card.QueenOfSpades},
			leadSuit:   card.Spades,
			firstTrick: true,
			expected:   card.Hand{cd(card.Spades, card.Rank3), card.QueenOfSpades},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, LegalFollows(tt.hand, tt.leadSuit, tt.firstTrick))
		})
	}
}

func TestLegalPlays_DispatchesOnTrick(t *testing.T) {
	t.Parallel()

	hand := card.Hand{card.TwoOfClubs, cd(card.Diamonds, card.Rank9), cd(card.Hearts, card.Rank4)}

	leads := LegalPlays(hand, trick.New(0), false, false)
	assert.Equal(t, card.Hand{card.TwoOfClubs, cd(card.Diamonds, card.Rank9)}, leads)

	led := trick.New(1).With(1, cd(card.Diamonds, card.RankK))
	follows := LegalPlays(hand, led, false, false)
	assert.Equal(t, card.Hand{cd(card.Diamonds, card.Rank9)}, follows)
}

func TestLegalPlays_SubsetOfHand(t *testing.T) {
	t.Parallel()

	deck := card.NewDeck()
	deck.Shuffle(card.NewRand(7))
	hands := deck.Deal(4)

	for _, hand := range hands {
		for _, lead := range card.NewDeck() {
			if hand.Contains(lead) {
				continue
			}
			tr := trick.New(0).With(0, lead)
			for _, first := range []bool{true, false} {
				legal := LegalPlays(hand, tr, first, false)
				assert.NotEmpty(t, legal)
				assert.True(t, hand.ContainsAll(legal...))
				if hand.HasSuit(lead.Suit) {
					for _, c := range legal {
						assert.Equal(t, lead.Suit, c.Suit)
					}
				}
			}
		}
	}
}

func TestIsFirstTrick(t *testing.T) {
	t.Parallel()

	var won [seat.Count][]trick.Trick
	assert.True(t, IsFirstTrick(won))

	won[2] = []trick.Trick{trick.New(0)}
	assert.False(t, IsFirstTrick(won))
}

func TestMoonShooter(t *testing.T) {
	t.Parallel()

	hearts := trick.New(0)
	for r := card.Rank2; r <= card.RankA; r++ {
		hearts = hearts.With(0, cd(card.Hearts, r))
	}
	queen := trick.New(0).With(0, card.QueenOfSpades)

	var won [seat.Count][]trick.Trick
	_, ok := MoonShooter(won)
	assert.False(t, ok)

	won[1] = []trick.Trick{hearts}
	_, ok = MoonShooter(won)
	assert.False(t, ok, "13 points is not a moon shot")

	won[1] = append(won[1], queen)
	shooter, ok := MoonShooter(won)
	assert.True(t, ok)
	assert.Equal(t, seat.Seat(1), shooter)
}
