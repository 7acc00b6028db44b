package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/GayaStar/adaptiveChess/internal/repository"
	"github.com/GayaStar/adaptiveChess/internal/repository/sqlite"
	"github.com/GayaStar/adaptiveChess/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type UserRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewUserRepository(s.db)
}

func (s *UserRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *UserRepositorySuite) TestCreateDefaults() {
	ctx := context.Background()

	user, err := s.repo.Create(ctx, "magnus", "hashed-secret")
	s.Require().NoError(err)

	s.Assert().Greater(user.ID, int64(0))
	s.Assert().Equal("magnus", user.Username)
	s.Assert().Equal("hashed-secret", user.PasswordHash)
	s.Assert().Equal(1000, user.Rating)
	s.Assert().Equal(0, user.EngineLevel)
	s.Assert().Equal(5, user.EngineDepth)
	s.Assert().False(user.CreatedAt.IsZero())
}

func (s *UserRepositorySuite) TestCreateDuplicateUsername() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, "magnus", "hash1")
	s.Require().NoError(err)

	_, err = s.repo.Create(ctx, "magnus", "hash2")
	s.Assert().ErrorIs(err, repository.ErrDuplicate)
}

func (s *UserRepositorySuite) TestGetByUsername() {
	ctx := context.Background()

	created, err := s.repo.Create(ctx, "magnus", "hash")
	s.Require().NoError(err)

	found, err := s.repo.GetByUsername(ctx, "magnus")
	s.Require().NoError(err)
	s.Assert().Equal(created.ID, found.ID)

	_, err = s.repo.GetByUsername(ctx, "nobody")
	s.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (s *UserRepositorySuite) TestUpdateRating() {
	ctx := context.Background()

	user, err := s.repo.Create(ctx, "magnus", "hash")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.UpdateRating(ctx, user.ID, 1250))

	updated, err := s.repo.Get(ctx, user.ID)
	s.Require().NoError(err)
	s.Assert().Equal(1250, updated.Rating)
	// Difficulty is untouched by a rating write.
	s.Assert().Equal(0, updated.EngineLevel)
	s.Assert().Equal(5, updated.EngineDepth)
}

func (s *UserRepositorySuite) TestUpdateDifficulty() {
	ctx := context.Background()

	user, err := s.repo.Create(ctx, "magnus", "hash")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.UpdateDifficulty(ctx, user.ID, 3, 8))

	updated, err := s.repo.Get(ctx, user.ID)
	s.Require().NoError(err)
	s.Assert().Equal(3, updated.EngineLevel)
	s.Assert().Equal(8, updated.EngineDepth)
	s.Assert().Equal(1000, updated.Rating)
}

func (s *UserRepositorySuite) TestUpdateMissingUser() {
	err := s.repo.UpdateRating(context.Background(), 9999, 1200)
	s.Assert().ErrorIs(err, repository.ErrNotFound)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
