package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursecheck"
)

// Ensure LoggingCatalogService implements coursecheck.CatalogService.
var _ coursecheck.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with debug logging.
type LoggingCatalogService struct {
	next   coursecheck.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next coursecheck.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// ReplaceCatalog delegates to the wrapped service and logs the import.
func (s *LoggingCatalogService) ReplaceCatalog(ctx context.Context, catalog *coursecheck.Catalog) (changed bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("replace catalog",
			"source", string(catalog.Source),
			"name", catalog.Name,
			"courses", len(catalog.Courses),
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceCatalog(ctx, catalog)
}

// FindCatalogBySource delegates to the wrapped service and logs the lookup.
func (s *LoggingCatalogService) FindCatalogBySource(ctx context.Context, source coursecheck.Source) (catalog *coursecheck.Catalog, err error) {
	defer func(begin time.Time) {
		courses := 0
		if catalog != nil {
			courses = len(catalog.Courses)
		}
		s.logger.Debug("find catalog",
			"source", string(source),
			"courses", courses,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCatalogBySource(ctx, source)
}

// FindCatalogs delegates to the wrapped service.
func (s *LoggingCatalogService) FindCatalogs(ctx context.Context) ([]*coursecheck.Catalog, error) {
	return s.next.FindCatalogs(ctx)
}

// DeleteCatalog delegates to the wrapped service and logs the removal.
func (s *LoggingCatalogService) DeleteCatalog(ctx context.Context, source coursecheck.Source) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete catalog",
			"source", string(source),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCatalog(ctx, source)
}
