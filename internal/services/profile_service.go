package services

import (
	"context"
	stderrors "errors"

	"github.com/GayaStar/adaptiveChess/internal/errors"
	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/GayaStar/adaptiveChess/internal/models"
	"github.com/GayaStar/adaptiveChess/internal/repository"
)

// ProfileService handles account state reads and manual updates
type ProfileService interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	UpdateRating(ctx context.Context, username string, newRating int) error
	UpdateDifficulty(ctx context.Context, username string, level, depth int) error
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetUser(ctx context.Context, username string) (*models.User, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting user: username=%s", username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("user", username)
		}
		log.Error("failed to get user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return user, nil
}

func (s *profileService) UpdateRating(ctx context.Context, username string, newRating int) error {
	log := logger.FromContext(ctx)
	log.Debug("updating rating: username=%s, rating=%d", username, newRating)

	if newRating < 100 {
		return errors.NewValidationError("rating", "must be at least 100")
	}

	user, err := s.GetUser(ctx, username)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateRating(ctx, user.ID, newRating); err != nil {
		log.Error("failed to update rating: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *profileService) UpdateDifficulty(ctx context.Context, username string, level, depth int) error {
	log := logger.FromContext(ctx)
	log.Debug("updating difficulty: username=%s, level=%d, depth=%d", username, level, depth)

	if level < 0 || level > 20 {
		return errors.NewValidationError("stockfishLevel", "must be between 0 and 20")
	}
	if depth < 1 || depth > 15 {
		return errors.NewValidationError("stockfishDepth", "must be between 1 and 15")
	}

	user, err := s.GetUser(ctx, username)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateDifficulty(ctx, user.ID, level, depth); err != nil {
		log.Error("failed to update difficulty: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
