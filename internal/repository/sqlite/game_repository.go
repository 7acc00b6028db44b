package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/GayaStar/adaptiveChess/internal/logger"
	"github.com/GayaStar/adaptiveChess/internal/models"
	"github.com/GayaStar/adaptiveChess/internal/repository"
	"github.com/Masterminds/squirrel"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type gameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new GameRepository implementation
func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Insert(ctx context.Context, game models.Game) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("inserting game: user_id=%d, result=%s, moves=%d", game.UserID, game.Result, len(game.Moves))

	res, err := r.db.ExecContext(ctx, `
INSERT INTO games (user_id, moves, result, rating)
VALUES (?, ?, ?, ?)
`, game.UserID, strings.Join(game.Moves, " "), game.Result, game.Rating)
	if err != nil {
		log.Error("failed to insert game: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get game id: %v", err)
		return 0, err
	}
	log.Debug("game inserted: id=%d", id)
	return id, nil
}

func (r *gameRepository) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")
	log.Debug("listing games with filter: user_id=%d, result=%s", filter.UserID, filter.Result)

	query := sqlBuilder.Select("id", "user_id", "moves", "result", "rating", "created_at").
		From("games")

	// Dynamic WHERE clauses
	if filter.UserID != 0 {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.Result != "" {
		query = query.Where(squirrel.Eq{"result": filter.Result})
	}

	// Newest first; id breaks ties from same-second saves.
	query = query.OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list games: %v", err)
		return nil, err
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		var moves string
		if err := rows.Scan(&g.ID, &g.UserID, &moves, &g.Result, &g.Rating, &g.CreatedAt); err != nil {
			log.Error("failed to scan game row: %v", err)
			return nil, err
		}
		g.Moves = strings.Fields(moves)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug("listed %d games", len(games))
	return games, nil
}

func (r *gameRepository) CountByResult(ctx context.Context, userID int64, result string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("game_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM games WHERE user_id = ? AND result = ?
`, userID, result).Scan(&count)
	if err != nil {
		log.Error("failed to count games: %v", err)
		return 0, err
	}
	return count, nil
}
