package cmd

import (
	"fmt"

	"codegap/core/config"
	"codegap/core/database"
	"codegap/core/dataset"
	"codegap/core/storage"
	"codegap/feature/codegap"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// buildService wires the dataset source, the reference source and the
// codegap service from cfg. The returned func releases the database, if any.
func buildService(cfg *config.Config, logg *zap.Logger, cacheReference bool) (*codegap.Service, func(), error) {
	var client storage.Client
	if cfg.Data.Source == dataset.SourceBucket {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
		logg.Debug("Reading datasets from bucket", zap.String("bucket", cfg.Storage.Bucket))
	}

	source, err := dataset.New(cfg.Data, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var db *gorm.DB
	if cfg.CodeGap.Reference == codegap.ReferenceDatabase {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection required: %w", err)
		}
		db = conn
		cleanup = func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		logg.Debug("Reading reference codes from database",
			zap.String("table", cfg.CodeGap.ReferenceTable),
			zap.String("column", cfg.CodeGap.ReferenceColumn))
	}

	reference, err := codegap.NewReferenceSource(cfg.CodeGap, source, db)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if cacheReference {
		reference = codegap.NewCachedReference(reference, cfg.CodeGap.CacheTTL())
	}

	svc := codegap.NewService(source, reference, cfg.CodeGap.RecordsPath, cfg.CodeGap.Columns, logg)
	return svc, cleanup, nil
}
