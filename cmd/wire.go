package cmd

import (
	"fmt"

	"github.com/bnema/ledgerline/internal/adapters/render/summary"
	tomlrepo "github.com/bnema/ledgerline/internal/adapters/repo/toml"
	"github.com/bnema/ledgerline/internal/application"
	"github.com/bnema/ledgerline/internal/config"
	"github.com/bnema/ledgerline/internal/domain"
	"github.com/bnema/ledgerline/internal/logging"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	config          config.Config
	logger          *zap.Logger
	repo            *tomlrepo.Repository
	service         *application.Service
	summaryRenderer func(application.Snapshot, []domain.AchievementEntry, summary.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogPath,
	})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire content repository: %w", err)
	}
	logger.Debug("Content source resolved", zap.String("source", repo.Source()))

	return &app{
		config:          cfg,
		logger:          logger,
		repo:            repo,
		service:         application.NewService(repo, logger),
		summaryRenderer: summary.Render,
	}, nil
}

func (a *app) engineConfig() application.EngineConfig {
	return application.EngineConfig{
		RevealInterval:      a.config.RevealInterval,
		NotificationStagger: a.config.NotificationStagger,
		NotificationVisible: a.config.NotificationVisible,
		NotificationFadeOut: a.config.NotificationFadeOut,
	}
}
