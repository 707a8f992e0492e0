package codegap

import (
	"context"
	"fmt"

	"codegap/core/dataset"

	"go.uber.org/zap"
)

// Service runs gap checks: it loads the Reference Code Set from its
// reference source and scans the records table against it.
type Service struct {
	source      dataset.Source
	reference   ReferenceSource
	recordsPath string
	layout      Layout
	logger      *zap.Logger
}

// NewService creates a new gap check service.
func NewService(source dataset.Source, reference ReferenceSource, recordsPath string, layout Layout, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:      source,
		reference:   reference,
		recordsPath: recordsPath,
		layout:      layout,
		logger:      logger,
	}
}

// Reference loads the Reference Code Set.
func (s *Service) Reference(ctx context.Context) (CodeSet, error) {
	codes, err := s.reference.Reference(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Loaded reference codes", zap.Int("count", codes.Len()))
	s.logger.Debug("Reference codes", zap.Strings("codes", codes.Sorted()))
	return codes, nil
}

// Scan reads the records table and reports codes missing from reference.
func (s *Service) Scan(ctx context.Context, reference CodeSet) (*Report, error) {
	rc, err := s.source.Open(ctx, s.recordsPath)
	if err != nil {
		return nil, fmt.Errorf("open records dataset: %w", err)
	}
	defer rc.Close()

	report, err := Scan(ctx, rc, reference, s.layout)
	if err != nil {
		return nil, fmt.Errorf("scan records dataset %s: %w", s.recordsPath, err)
	}

	s.logger.Info("Scanned records",
		zap.String("path", s.recordsPath),
		zap.Int("rows", report.Rows),
		zap.Int("missing", report.Missing.Len()),
	)
	return report, nil
}

// Check loads the reference set and scans the records table against it.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	reference, err := s.Reference(ctx)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, reference)
}

// Invalidate drops a cached reference set, if the reference source caches.
// It reports whether there was a cache to drop.
func (s *Service) Invalidate() bool {
	c, ok := s.reference.(*CachedReference)
	if !ok {
		return false
	}
	c.Invalidate()
	return true
}
