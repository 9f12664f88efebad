package mock

import (
	"context"
	"io"

	"github.com/fwojciec/coursecheck"
)

var _ coursecheck.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of coursecheck.CatalogService.
type CatalogService struct {
	ReplaceCatalogFn      func(ctx context.Context, catalog *coursecheck.Catalog) (bool, error)
	FindCatalogBySourceFn func(ctx context.Context, source coursecheck.Source) (*coursecheck.Catalog, error)
	FindCatalogsFn        func(ctx context.Context) ([]*coursecheck.Catalog, error)
	DeleteCatalogFn       func(ctx context.Context, source coursecheck.Source) error
}

func (s *CatalogService) ReplaceCatalog(ctx context.Context, catalog *coursecheck.Catalog) (bool, error) {
	return s.ReplaceCatalogFn(ctx, catalog)
}

func (s *CatalogService) FindCatalogBySource(ctx context.Context, source coursecheck.Source) (*coursecheck.Catalog, error) {
	return s.FindCatalogBySourceFn(ctx, source)
}

func (s *CatalogService) FindCatalogs(ctx context.Context) ([]*coursecheck.Catalog, error) {
	return s.FindCatalogsFn(ctx)
}

func (s *CatalogService) DeleteCatalog(ctx context.Context, source coursecheck.Source) error {
	return s.DeleteCatalogFn(ctx, source)
}

var _ coursecheck.CatalogParser = (*CatalogParser)(nil)

// CatalogParser is a mock implementation of coursecheck.CatalogParser.
type CatalogParser struct {
	ParseCatalogFn func(r io.Reader, source coursecheck.Source, layout coursecheck.Layout) ([]*coursecheck.Course, error)
}

func (p *CatalogParser) ParseCatalog(r io.Reader, source coursecheck.Source, layout coursecheck.Layout) ([]*coursecheck.Course, error) {
	return p.ParseCatalogFn(r, source, layout)
}
