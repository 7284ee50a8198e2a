package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"galleryhub/internal/config"
	"galleryhub/internal/database"
	"galleryhub/internal/oauth"
	"galleryhub/internal/repository"
	"galleryhub/internal/service"
	"galleryhub/internal/storage"
)

// NewLogger builds the process logger from the LOG_* settings.
func NewLogger(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// App connects the database and object storage and wires repositories and services.
func App(cfg *config.Config, log *zap.Logger) (*database.DB, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		db.CloseDB()
		return nil, nil, fmt.Errorf("init minio: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	providers := oauth.NewProviders(cfg.OAuth)

	services, err := service.NewService(repo, cfg, minioClient, db, providers, log)
	if err != nil {
		db.CloseDB()
		return nil, nil, fmt.Errorf("init services: %w", err)
	}

	return db, services, nil
}
