package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/ledgerline/internal/domain"
	"github.com/bnema/ledgerline/internal/ports"
	"go.uber.org/zap"
)

var ErrNilSink = errors.New("presentation sink is required")

type Service struct {
	repo   ports.ContentRepository
	logger *zap.Logger
}

func NewService(repo ports.ContentRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) LoadContent(ctx context.Context) (domain.Content, error) {
	content, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Content{}, fmt.Errorf("load content: %w", err)
	}

	return content, nil
}

// ValidateContent loads the content and runs the existence checks. Every
// problem found is returned, joined.
func (s *Service) ValidateContent(ctx context.Context) (domain.Content, error) {
	content, err := s.LoadContent(ctx)
	if err != nil {
		return domain.Content{}, err
	}

	if err := content.Validate(); err != nil {
		return content, fmt.Errorf("validate content: %w", err)
	}

	return content, nil
}

func (s *Service) ListSlides(ctx context.Context) ([]domain.Slide, error) {
	content, err := s.LoadContent(ctx)
	if err != nil {
		return nil, err
	}

	return content.Slides.Slides(), nil
}

func (s *Service) ListAchievements(ctx context.Context) ([]domain.AchievementEntry, error) {
	content, err := s.LoadContent(ctx)
	if err != nil {
		return nil, err
	}

	return content.Achievements, nil
}

// NewSession loads the content and builds an engine bound to sink. The session
// is not started; call Engine.Start from the loop that owns it.
func (s *Service) NewSession(ctx context.Context, sink ports.PresentationSink, cfg EngineConfig) (*Engine, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	content, err := s.LoadContent(ctx)
	if err != nil {
		return nil, err
	}
	if err := content.Validate(); err != nil {
		s.logger.Warn("Content has dangling references", zap.Error(err))
	}

	engine := NewEngine(content, sink, s.logger, cfg)
	s.logger.Debug("Session created", zap.Stringer("sessionID", engine.ID()), zap.Int("slides", content.Slides.Len()))
	return engine, nil
}

// EvaluateCredit scores a hypothetical ledger, as the credit modal would.
func EvaluateCredit(balance, totalSaved, totalSpent, goalAmount float64) domain.CreditReport {
	ledger := domain.Ledger{
		Balance:    max(balance, 0),
		TotalSaved: max(totalSaved, 0),
		TotalSpent: max(totalSpent, 0),
		GoalAmount: goalAmount,
	}
	ledger.RecomputeScore()
	return ledger.CreditReport()
}
