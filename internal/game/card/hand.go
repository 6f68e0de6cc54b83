package card

import (
	"slices"
	"strings"
)

// Hand 一组牌。方法都不修改接收者，需要变更时返回新的 Hand
type Hand []Card

// Clone returns an independent copy.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	return slices.Clone(h)
}

// Contains reports whether c is in the hand.
func (h Hand) Contains(c Card) bool {
	return slices.Contains(h, c)
}

// ContainsAll reports whether every card in cards is in the hand.
func (h Hand) ContainsAll(cards ...Card) bool {
	for _, c := range cards {
		if !h.Contains(c) {
			return false
		}
	}
	return true
}

// Remove 从手牌中移除指定的牌
func (h Hand) Remove(toRemove ...Card) Hand {
	result := make(Hand, 0, len(h))
	for _, c := range h {
		if !slices.Contains(toRemove, c) {
			result = append(result, c)
		}
	}
	return result
}

// Add returns a sorted hand holding h plus cards.
func (h Hand) Add(cards ...Card) Hand {
	result := make(Hand, 0, len(h)+len(cards))
	result = append(result, h...)
	result = append(result, cards...)
	result.Sort()
	return result
}

// OfSuit returns the cards of suit s.
func (h Hand) OfSuit(s Suit) Hand {
	return h.Filter(func(c Card) bool { return c.Suit == s })
}

// NotOfSuit returns the cards not of suit s.
func (h Hand) NotOfSuit(s Suit) Hand {
	return h.Filter(func(c Card) bool { return c.Suit != s })
}

// HasSuit reports whether the hand holds any card of suit s.
func (h Hand) HasSuit(s Suit) bool {
	return slices.ContainsFunc(h, func(c Card) bool { return c.Suit == s })
}

// Filter returns the cards for which keep is true.
func (h Hand) Filter(keep func(Card) bool) Hand {
	result := make(Hand, 0, len(h))
	for _, c := range h {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}

// Points sums the point values of the cards.
func (h Hand) Points() int {
	total := 0
	for _, c := range h {
		total += c.Points()
	}
	return total
}

// Sort orders the hand in place by suit, then rank.
func (h Hand) Sort() {
	slices.SortFunc(h, Compare)
}

// Sorted returns a sorted copy.
func (h Hand) Sorted() Hand {
	out := h.Clone()
	out.Sort()
	return out
}

// GroupBySuit returns the sorted cards of each suit, keyed by suit.
func (h Hand) GroupBySuit() map[Suit]Hand {
	groups := make(map[Suit]Hand, len(Suits))
	for _, c := range h.Sorted() {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	return groups
}

// Combinations3 returns every unordered 3-card combination, in hand order.
func (h Hand) Combinations3() [][3]Card {
	n := len(h)
	if n < 3 {
		return nil
	}
	combos := make([][3]Card, 0, n*(n-1)*(n-2)/6)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				combos = append(combos, [3]Card{h[i], h[j], h[k]})
			}
		}
	}
	return combos
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
