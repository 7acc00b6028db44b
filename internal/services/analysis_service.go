package services

import (
	"context"

	"github.com/GayaStar/adaptiveChess/internal/analysis"
	"github.com/GayaStar/adaptiveChess/internal/errors"
	"github.com/GayaStar/adaptiveChess/internal/logger"
)

// AnalysisService turns a finished game into a move-quality report
type AnalysisService interface {
	Analyze(ctx context.Context, moves []string, side string) ([]analysis.Entry, error)
}

type analysisService struct {
	builder *analysis.Builder
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(builder *analysis.Builder) AnalysisService {
	return &analysisService{builder: builder}
}

func (s *analysisService) Analyze(ctx context.Context, moves []string, side string) ([]analysis.Entry, error) {
	log := logger.FromContext(ctx)
	log.Debug("analyzing game: moves=%d, side=%s", len(moves), side)

	if len(moves) == 0 {
		return nil, errors.NewValidationError("moves", "cannot be empty")
	}
	parsedSide, err := analysis.ParseSide(side)
	if err != nil {
		return nil, errors.NewValidationError("side", err.Error())
	}

	entries, err := s.builder.Generate(ctx, moves, parsedSide)
	if err != nil {
		log.Error("analysis failed: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if entries == nil {
		entries = []analysis.Entry{}
	}
	return entries, nil
}
