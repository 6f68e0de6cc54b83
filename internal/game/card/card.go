package card

import (
	"cmp"
	"math/rand/v2"
	"strconv"
)

// Suit 定义花色，顺序即比较顺序：梅花 < 方块 < 黑桃 < 红心
type Suit int

// Rank 定义点数
type Rank int

// Card 定义一张牌
type Card struct {
	Suit Suit
	Rank Rank
}

const (
	Clubs    Suit = iota // 梅花
	Diamonds             // 方块
	Spades               // 黑桃
	Hearts               // 红心
)

// Suits 按顺序列出全部花色
var Suits = [4]Suit{Clubs, Diamonds, Spades, Hearts}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Spades:   "♠",
	Hearts:   "♥",
}

var suitNames = map[Suit]string{
	Clubs:    "clubs",
	Diamonds: "diamonds",
	Spades:   "spades",
	Hearts:   "hearts",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// Name returns the English name of the suit.
func (s Suit) Name() string {
	return suitNames[s]
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankJ: "J",
	RankQ: "Q",
	RankK: "K",
	RankA: "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

var (
	TwoOfClubs    = Card{Suit: Clubs, Rank: Rank2}
	QueenOfSpades = Card{Suit: Spades, Rank: RankQ}
)

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Compare orders cards by suit, then rank.
func Compare(a, b Card) int {
	if c := cmp.Compare(a.Suit, b.Suit); c != 0 {
		return c
	}
	return cmp.Compare(a.Rank, b.Rank)
}

// Less reports whether c sorts before o.
func (c Card) Less(o Card) bool {
	return Compare(c, o) < 0
}

// Points 返回这张牌的分值：红心 1 分，黑桃 Q 13 分
func (c Card) Points() int {
	switch {
	case c.Suit == Hearts:
		return 1
	case c == QueenOfSpades:
		return 13
	default:
		return 0
	}
}

// IsPointCard reports whether the card carries penalty points.
func (c Card) IsPointCard() bool {
	return c.Points() > 0
}

// Deck 定义一副牌
type Deck []Card

// NewDeck returns the 52 cards in sorted order.
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for _, s := range Suits {
		for r := Rank2; r <= RankA; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle permutes the deck in place using the caller's generator.
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal splits the deck into n equal hands, dealing one card at a time.
func (d Deck) Deal(n int) []Hand {
	hands := make([]Hand, n)
	for i, c := range d {
		hands[i%n] = append(hands[i%n], c)
	}
	for i := range hands {
		hands[i].Sort()
	}
	return hands
}

// NewRand returns a generator that replays the same sequence for the same seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewEntropyRand returns a generator seeded from the runtime's entropy source.
func NewEntropyRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
