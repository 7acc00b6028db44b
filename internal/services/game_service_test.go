package services_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/errors"
	"github.com/GayaStar/adaptiveChess/internal/models"
	"github.com/GayaStar/adaptiveChess/internal/rating"
	"github.com/GayaStar/adaptiveChess/internal/services"
	"github.com/GayaStar/adaptiveChess/internal/testutil/mocks"
	"github.com/GayaStar/adaptiveChess/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func appStatus(t *testing.T, err error) int {
	t.Helper()
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr), "expected an AppError, got %v", err)
	return appErr.Status
}

func engineUser() *models.User {
	return &models.User{ID: 1, Username: "magnus", Rating: 1250, EngineLevel: 2, EngineDepth: 6}
}

func policyUser() *models.User {
	return &models.User{ID: 2, Username: "newbie", Rating: 1000, EngineLevel: 0, EngineDepth: 5}
}

func TestConclude_EngineWin(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	userRepo := new(mocks.MockUserRepository)
	queue := new(mocks.MockJobQueue)
	svc := services.NewGameService(gameRepo, userRepo, queue)

	user := engineUser()
	want := rating.VsEngine(user.State(), rating.Win)

	// The saved game carries the post-update rating.
	gameRepo.On("Insert", mock.Anything, mock.MatchedBy(func(g models.Game) bool {
		return g.UserID == user.ID && g.Result == "1-0" && g.Rating == want.New.Rating
	})).Return(int64(1), nil)

	update, err := svc.Conclude(context.Background(), user, []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"}, "1-0")
	require.NoError(t, err)

	assert.Equal(t, want.New, update.New)
	assert.Equal(t, rating.OpponentEngine, update.Opponent)

	jobs := queue.Submitted()
	require.Len(t, jobs, 2)
	ratingJob, ok := jobs[0].(*worker.SyncRatingJob)
	require.True(t, ok)
	assert.Equal(t, want.New.Rating, ratingJob.Rating)
	diffJob, ok := jobs[1].(*worker.SyncDifficultyJob)
	require.True(t, ok)
	assert.Equal(t, want.New.Level, diffJob.Level)
	assert.Equal(t, want.New.Depth, diffJob.Depth)

	gameRepo.AssertExpectations(t)
}

func TestConclude_PolicyLoss(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	queue := new(mocks.MockJobQueue)
	svc := services.NewGameService(gameRepo, new(mocks.MockUserRepository), queue)

	user := policyUser()
	gameRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil)

	update, err := svc.Conclude(context.Background(), user, []string{"e4", "e5"}, "0-1")
	require.NoError(t, err)

	assert.Equal(t, rating.OpponentPolicy, update.Opponent)
	assert.Equal(t, 985, update.New.Rating)

	// Difficulty never moves on the policy path, so only the rating syncs.
	jobs := queue.Submitted()
	require.Len(t, jobs, 1)
	_, ok := jobs[0].(*worker.SyncRatingJob)
	assert.True(t, ok)
}

func TestConclude_DrawKeepsDifficulty(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	queue := new(mocks.MockJobQueue)
	svc := services.NewGameService(gameRepo, new(mocks.MockUserRepository), queue)

	gameRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil)

	update, err := svc.Conclude(context.Background(), engineUser(), []string{"e4", "e5"}, "1/2-1/2")
	require.NoError(t, err)
	assert.Equal(t, update.Old.Level, update.New.Level)
	assert.Equal(t, update.Old.Depth, update.New.Depth)

	jobs := queue.Submitted()
	require.Len(t, jobs, 1)
}

func TestConclude_AppliedOnce(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	queue := new(mocks.MockJobQueue)
	svc := services.NewGameService(gameRepo, new(mocks.MockUserRepository), queue)

	gameRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil)

	moves := []string{"e4", "e5", "Nf3"}
	_, err := svc.Conclude(context.Background(), engineUser(), moves, "1-0")
	require.NoError(t, err)

	_, err = svc.Conclude(context.Background(), engineUser(), moves, "1-0")
	require.Error(t, err)
	assert.Equal(t, 409, appStatus(t, err))

	// A different game for the same user concludes fine.
	_, err = svc.Conclude(context.Background(), engineUser(), []string{"d4", "d5"}, "0-1")
	assert.NoError(t, err)
}

func TestConclude_BadResult(t *testing.T) {
	svc := services.NewGameService(new(mocks.MockGameRepository), new(mocks.MockUserRepository), new(mocks.MockJobQueue))

	_, err := svc.Conclude(context.Background(), engineUser(), []string{"e4"}, "resigned")
	require.Error(t, err)
	assert.Equal(t, 400, appStatus(t, err))
}

func TestSaveGame_Validation(t *testing.T) {
	svc := services.NewGameService(new(mocks.MockGameRepository), new(mocks.MockUserRepository), new(mocks.MockJobQueue))

	_, err := svc.SaveGame(context.Background(), engineUser(), nil, "1-0")
	assert.Equal(t, 400, appStatus(t, err))

	_, err = svc.SaveGame(context.Background(), engineUser(), []string{"e4"}, "won")
	assert.Equal(t, 400, appStatus(t, err))
}

func TestSaveGame_StoresCurrentRating(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewGameService(gameRepo, new(mocks.MockUserRepository), new(mocks.MockJobQueue))

	user := engineUser()
	gameRepo.On("Insert", mock.Anything, mock.MatchedBy(func(g models.Game) bool {
		return g.Rating == user.Rating
	})).Return(int64(7), nil)

	id, err := svc.SaveGame(context.Background(), user, []string{"e4", "e5"}, "1-0")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	gameRepo.AssertExpectations(t)
}

func TestHistory_Aggregates(t *testing.T) {
	gameRepo := new(mocks.MockGameRepository)
	svc := services.NewGameService(gameRepo, new(mocks.MockUserRepository), new(mocks.MockJobQueue))

	now := time.Now()
	// Newest first, as the repository returns them.
	games := []models.Game{
		{ID: 3, Result: "1/2-1/2", Rating: 1049, CreatedAt: now},
		{ID: 2, Result: "1-0", Rating: 1049, CreatedAt: now.Add(-time.Hour)},
		{ID: 1, Result: "0-1", Rating: 1025, CreatedAt: now.Add(-2 * time.Hour)},
	}
	gameRepo.On("List", mock.Anything, models.GameFilter{UserID: int64(1)}).Return(games, nil)

	stats, err := svc.History(context.Background(), engineUser())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.Draws)

	// Rating curve runs oldest to newest.
	assert.Equal(t, []int{1025, 1049, 1049}, stats.Ratings)
	require.Len(t, stats.Latest, 2)
	assert.Equal(t, int64(3), stats.Latest[0].ID)
	assert.Equal(t, int64(2), stats.Latest[1].ID)
}
