package mocks

import (
	"context"

	"github.com/GayaStar/adaptiveChess/internal/policy"
	"github.com/stretchr/testify/mock"
)

// MockMoveEngine is a mock implementation of services.MoveEngine
type MockMoveEngine struct {
	mock.Mock
}

func (m *MockMoveEngine) SetSkillLevel(level int) error {
	args := m.Called(level)
	return args.Error(0)
}

func (m *MockMoveEngine) BestMove(ctx context.Context, fen string, depth int) (string, error) {
	args := m.Called(ctx, fen, depth)
	return args.String(0), args.Error(1)
}

func (m *MockMoveEngine) Stop() error {
	args := m.Called()
	return args.Error(0)
}

// MockPolicyClient is a mock implementation of services.PolicyClient
type MockPolicyClient struct {
	mock.Mock
}

func (m *MockPolicyClient) BestMove(ctx context.Context, fen string, userID int64, elo int) (policy.Move, error) {
	args := m.Called(ctx, fen, userID, elo)
	return args.Get(0).(policy.Move), args.Error(1)
}
