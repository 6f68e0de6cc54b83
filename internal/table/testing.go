//go:build !production

package table

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/hearts/internal/game"
)

// MockStore 存储 mock
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveState(ctx context.Context, s *game.GameState) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStore) AppendAction(ctx context.Context, gameID string, a game.Action) error {
	args := m.Called(ctx, gameID, a)
	return args.Error(0)
}
