package services

import (
	"context"
	stderrors "errors"

	"github.com/GayaStar/adaptiveChess/internal/errors"
	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/GayaStar/adaptiveChess/internal/models"
	"github.com/GayaStar/adaptiveChess/internal/repository"
	"github.com/GayaStar/adaptiveChess/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup, login and logout
type AuthService interface {
	Signup(ctx context.Context, username, password string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo repository.UserRepository
	sessions *session.Store
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessions *session.Store) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions}
}

func (s *authService) Signup(ctx context.Context, username, password string) (*models.User, string, error) {
	log := logger.FromContext(ctx)
	log.Debug("signup: username=%s", username)

	if username == "" {
		return nil, "", errors.NewValidationError("username", "cannot be empty")
	}
	if password == "" {
		return nil, "", errors.NewValidationError("password", "cannot be empty")
	}
	if len(password) > 72 {
		return nil, "", errors.NewValidationError("password", "too long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password: %v", err)
		return nil, "", errors.NewInternalError(err)
	}

	user, err := s.userRepo.Create(ctx, username, string(hash))
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, "", errors.NewConflictError("username already taken")
		}
		log.Error("failed to create user: %v", err)
		return nil, "", errors.NewInternalError(err)
	}

	token, err := s.sessions.Create(ctx, username)
	if err != nil {
		log.Error("failed to create session: %v", err)
		return nil, "", errors.NewInternalError(err)
	}

	log.Info("user signed up: %s (id=%d)", username, user.ID)
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	log := logger.FromContext(ctx)
	log.Debug("login: username=%s", username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			// Same answer as a wrong password, so usernames can't be probed.
			return nil, "", errors.NewUnauthorizedError("invalid username or password")
		}
		log.Error("failed to look up user: %v", err)
		return nil, "", errors.NewInternalError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", errors.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.sessions.Create(ctx, username)
	if err != nil {
		log.Error("failed to create session: %v", err)
		return nil, "", errors.NewInternalError(err)
	}

	log.Info("user logged in: %s", username)
	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := s.sessions.Delete(ctx, token); err != nil {
		log.Error("failed to delete session: %v", err)
		return errors.NewInternalError(err)
	}
	log.Debug("session revoked")
	return nil
}
