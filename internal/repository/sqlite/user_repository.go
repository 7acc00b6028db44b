package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/GayaStar/adaptiveChess/internal/models"
	"github.com/GayaStar/adaptiveChess/internal/repository"
	"github.com/mattn/go-sqlite3"
)

// Defaults for a brand-new account.
const (
	defaultRating = 1000
	defaultLevel  = 0
	defaultDepth  = 5
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("creating user: username=%s", username)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (username, password_hash, rating, engine_level, engine_depth)
VALUES (?, ?, ?, ?, ?)
`, username, passwordHash, defaultRating, defaultLevel, defaultDepth)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			log.Debug("username already taken: %s", username)
			return nil, repository.ErrDuplicate
		}
		log.Error("failed to insert user: %v", err)
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get user id: %v", err)
		return nil, err
	}
	log.Debug("user created: id=%d", id)
	return r.Get(ctx, id)
}

func (r *userRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	return r.get(ctx, `WHERE id = ?`, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.get(ctx, `WHERE username = ?`, username)
}

func (r *userRepository) get(ctx context.Context, where string, arg any) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	var u models.User
	err := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash, rating, engine_level, engine_depth, created_at
FROM users `+where, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Rating, &u.EngineLevel, &u.EngineDepth, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found: %v", arg)
			return nil, repository.ErrNotFound
		}
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateRating(ctx context.Context, id int64, rating int) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("updating rating: id=%d, rating=%d", id, rating)

	return r.update(ctx, `UPDATE users SET rating = ? WHERE id = ?`, rating, id)
}

func (r *userRepository) UpdateDifficulty(ctx context.Context, id int64, level, depth int) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("updating difficulty: id=%d, level=%d, depth=%d", id, level, depth)

	return r.update(ctx, `UPDATE users SET engine_level = ?, engine_depth = ? WHERE id = ?`, level, depth, id)
}

func (r *userRepository) update(ctx context.Context, query string, args ...any) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update user: %v", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
