package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
)

func cd(s card.Suit, r card.Rank) card.Card {
	return card.Card{Suit: s, Rank: r}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		name string
	}{
		{KindRandom, "random"},
		{KindSimple, "simple"},
		{KindFirst, "first"},
	}
	for _, tt := range tests {
		p, err := New(tt.kind, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.name, p.Name())
		_, ok := p.(MoonChooser)
		assert.True(t, ok, "%s chooses the moon option", tt.name)
	}

	_, err := New("smart", nil)
	assert.Error(t, err)
}

func TestBots_SmallHands(t *testing.T) {
	t.Parallel()

	bots := []Player{FirstBot{}, NewRandomBot(card.NewRand(1)), NewSimpleBot()}
	for _, b := range bots {
		_, err := b.PassCards(card.Hand{card.TwoOfClubs})
		assert.ErrorIs(t, err, ErrHandTooSmall, b.Name())

		_, err = b.PlayCard(card.Hand{card.TwoOfClubs}, nil)
		assert.ErrorIs(t, err, ErrNoLegalCards, b.Name())
	}
}

func TestFirstBot(t *testing.T) {
	t.Parallel()

	hand := card.NewDeck()[:13]
	sel, err := FirstBot{}.PassCards(card.Hand(hand))
	require.NoError(t, err)
	assert.Equal(t, [3]card.Card{hand[0], hand[1], hand[2]}, sel)

	c, err := FirstBot{}.PlayCard(card.Hand(hand), card.Hand(hand[4:6]))
	require.NoError(t, err)
	assert.Equal(t, hand[4], c)
}

func TestRandomBot(t *testing.T) {
	t.Parallel()

	hand := card.Hand(card.NewDeck()[13:26])
	b := NewRandomBot(card.NewRand(7))

	for range 50 {
		sel, err := b.PassCards(hand)
		require.NoError(t, err)
		assert.True(t, hand.ContainsAll(sel[:]...))
		assert.NotEqual(t, sel[0], sel[1])
		assert.NotEqual(t, sel[1], sel[2])
		assert.NotEqual(t, sel[0], sel[2])

		legal := hand[3:7]
		c, err := b.PlayCard(hand, legal)
		require.NoError(t, err)
		assert.True(t, legal.Contains(c))
	}

	// 同一种子结果一致
	a1, _ := NewRandomBot(card.NewRand(9)).PassCards(hand)
	a2, _ := NewRandomBot(card.NewRand(9)).PassCards(hand)
	assert.Equal(t, a1, a2)
}

func TestCardCounter(t *testing.T) {
	t.Parallel()

	cc := NewCardCounter()
	require.Equal(t, 52, cc.Len())
	assert.Equal(t, 13, cc.Remaining()[card.Hearts])

	hand := card.Hand{card.QueenOfSpades, cd(card.Hearts, card.RankA)}
	cc.Reset(hand)
	assert.Equal(t, 50, cc.Len())
	assert.False(t, cc.IsOut(card.QueenOfSpades))
	assert.Equal(t, 12, cc.Remaining()[card.Hearts])

	cc.DeductCards([]card.Card{cd(card.Hearts, card.Rank2), cd(card.Hearts, card.Rank2)})
	assert.Equal(t, 11, cc.Remaining()[card.Hearts])
	assert.True(t, cc.IsOut(cd(card.Hearts, card.Rank3)))

	cc.Reset(nil)
	assert.Equal(t, 52, cc.Len())
}

func TestSimpleBot_PassCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand card.Hand
		want []card.Card
	}{
		{
			name: "queen and high spades first",
			hand: card.Hand{
				cd(card.Clubs, card.Rank3), cd(card.Clubs, card.Rank4), cd(card.Clubs, card.Rank5),
				cd(card.Diamonds, card.Rank3), cd(card.Diamonds, card.Rank4), cd(card.Diamonds, card.Rank6),
				cd(card.Spades, card.Rank2), card.QueenOfSpades, cd(card.Spades, card.RankK), cd(card.Spades, card.RankA),
				cd(card.Hearts, card.Rank2), cd(card.Hearts, card.Rank3), cd(card.Hearts, card.Rank4),
			},
			want: []card.Card{card.QueenOfSpades, cd(card.Spades, card.RankA), cd(card.Spades, card.RankK)},
		},
		{
			name: "high hearts before low cards",
			hand: card.Hand{
				cd(card.Clubs, card.Rank3), cd(card.Clubs, card.Rank4), cd(card.Clubs, card.Rank5),
				cd(card.Diamonds, card.Rank3), cd(card.Diamonds, card.Rank4), cd(card.Diamonds, card.Rank6),
				cd(card.Spades, card.Rank2), cd(card.Spades, card.Rank3), cd(card.Spades, card.Rank4),
				cd(card.Hearts, card.Rank2), cd(card.Hearts, card.RankQ), cd(card.Hearts, card.RankK), cd(card.Hearts, card.RankA),
			},
			want: []card.Card{cd(card.Hearts, card.RankA), cd(card.Hearts, card.RankK), cd(card.Hearts, card.RankQ)},
		},
		{
			name: "void a short suit",
			hand: card.Hand{
				cd(card.Clubs, card.Rank9), cd(card.Clubs, card.RankJ),
				cd(card.Diamonds, card.Rank2), cd(card.Diamonds, card.Rank3), cd(card.Diamonds, card.Rank4), cd(card.Diamonds, card.Rank5),
				cd(card.Spades, card.Rank2), cd(card.Spades, card.Rank3), cd(card.Spades, card.Rank4),
				cd(card.Hearts, card.Rank2), cd(card.Hearts, card.Rank3), cd(card.Hearts, card.Rank4), cd(card.Hearts, card.RankA),
			},
			want: []card.Card{cd(card.Hearts, card.RankA), cd(card.Clubs, card.RankJ), cd(card.Clubs, card.Rank9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sel, err := NewSimpleBot().PassCards(tt.hand.Sorted())
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, sel[:])
		})
	}
}

func TestSimpleBot_PlayCard(t *testing.T) {
	t.Parallel()

	spadeLead := trick.New(1).With(1, cd(card.Spades, card.RankK))
	lastSeat := trick.New(1).
		With(1, cd(card.Diamonds, card.Rank5)).
		With(2, cd(card.Diamonds, card.Rank9)).
		With(3, cd(card.Diamonds, card.Rank2))

	tests := []struct {
		name  string
		view  View
		hand  card.Hand
		legal card.Hand
		want  card.Card
	}{
		{
			name:  "duck under the winner",
			view:  View{Trick: trick.New(1).With(1, cd(card.Clubs, card.Rank9))},
			legal: card.Hand{cd(card.Clubs, card.Rank2), cd(card.Clubs, card.Rank8), cd(card.Clubs, card.RankK)},
			want:  cd(card.Clubs, card.Rank8),
		},
		{
			name:  "lowest when forced to win",
			view:  View{Trick: trick.New(1).With(1, cd(card.Clubs, card.Rank2))},
			legal: card.Hand{cd(card.Clubs, card.Rank8), cd(card.Clubs, card.RankK)},
			want:  cd(card.Clubs, card.Rank8),
		},
		{
			name:  "drop queen under king of spades",
			view:  View{Trick: spadeLead},
			legal: card.Hand{cd(card.Spades, card.Rank3), card.QueenOfSpades},
			want:  card.QueenOfSpades,
		},
		{
			name:  "last seat takes a clean trick high",
			view:  View{Trick: lastSeat},
			legal: card.Hand{cd(card.Diamonds, card.Rank3), cd(card.Diamonds, card.RankA)},
			want:  cd(card.Diamonds, card.RankA),
		},
		{
			name:  "dump queen when void",
			view:  View{Trick: trick.New(1).With(1, cd(card.Clubs, card.Rank9))},
			legal: card.Hand{cd(card.Hearts, card.RankA), card.QueenOfSpades, cd(card.Diamonds, card.Rank2)},
			want:  card.QueenOfSpades,
		},
		{
			name:  "dump high heart when void",
			view:  View{Trick: trick.New(1).With(1, cd(card.Clubs, card.Rank9))},
			legal: card.Hand{cd(card.Hearts, card.Rank4), cd(card.Hearts, card.RankJ), cd(card.Diamonds, card.RankA)},
			want:  cd(card.Hearts, card.RankJ),
		},
		{
			name:  "lead low and not hearts",
			view:  View{Trick: trick.New(0), HeartsBroken: true},
			legal: card.Hand{cd(card.Hearts, card.Rank2), cd(card.Diamonds, card.Rank5), cd(card.Clubs, card.Rank7)},
			want:  cd(card.Diamonds, card.Rank5),
		},
		{
			name:  "no high spade lead while queen is out",
			view:  View{Trick: trick.New(0)},
			legal: card.Hand{cd(card.Spades, card.RankA), cd(card.Clubs, card.RankJ)},
			want:  cd(card.Clubs, card.RankJ),
		},
		{
			name:  "only hearts left",
			view:  View{Trick: trick.New(0), HeartsBroken: true},
			legal: card.Hand{cd(card.Hearts, card.Rank9), cd(card.Hearts, card.Rank3)},
			want:  cd(card.Hearts, card.Rank3),
		},
		{
			name:  "single option",
			legal: card.Hand{card.TwoOfClubs},
			want:  card.TwoOfClubs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewSimpleBot()
			b.Observe(tt.view)
			hand := tt.hand
			if hand == nil {
				hand = tt.legal
			}
			got, err := b.PlayCard(hand, tt.legal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimpleBot_ChooseMoon(t *testing.T) {
	t.Parallel()

	b := NewSimpleBot()
	assert.True(t, b.ChooseMoon(0, [seat.Count]int{10, 20, 30, 40}), "nobody reaches 100")
	assert.True(t, b.ChooseMoon(0, [seat.Count]int{10, 80, 30, 40}), "ends the game with the shooter lowest")
	assert.False(t, b.ChooseMoon(2, [seat.Count]int{10, 80, 60, 40}), "would lose to seat 0")
}
