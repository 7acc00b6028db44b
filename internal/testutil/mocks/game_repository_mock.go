package mocks

import (
	"context"

	"github.com/GayaStar/adaptiveChess/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a mock implementation of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Insert(ctx context.Context, game models.Game) (int64, error) {
	args := m.Called(ctx, game)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameRepository) CountByResult(ctx context.Context, userID int64, result string) (int, error) {
	args := m.Called(ctx, userID, result)
	return args.Int(0), args.Error(1)
}
