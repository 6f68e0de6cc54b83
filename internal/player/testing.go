//go:build !production

package player

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
)

// MockPlayer 玩家 mock
type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPlayer) PassCards(hand card.Hand) ([3]card.Card, error) {
	args := m.Called(hand)
	return args.Get(0).([3]card.Card), args.Error(1)
}

func (m *MockPlayer) PlayCard(hand, legal card.Hand) (card.Card, error) {
	args := m.Called(hand, legal)
	return args.Get(0).(card.Card), args.Error(1)
}

// MockMoonPlayer is a MockPlayer that also chooses the moon option.
type MockMoonPlayer struct {
	MockPlayer
}

func (m *MockMoonPlayer) ChooseMoon(self seat.Seat, scores [seat.Count]int) bool {
	args := m.Called(self, scores)
	return args.Bool(0)
}
