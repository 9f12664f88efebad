package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/coursecheck"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coursecheck.CatalogService = (*CatalogService)(nil)

// CatalogService implements coursecheck.CatalogService using SQLite.
// Each source holds at most one catalog.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// hashCatalog computes an xxHash over the catalog name and every course field
// in catalog order and returns it as a hex string.
func hashCatalog(catalog *coursecheck.Catalog) string {
	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	write(catalog.Name)
	for _, c := range catalog.Courses {
		write(c.ID)
		write(c.DisplayName)
		write(c.ComparisonText)
		write(c.Classification)
	}
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, d.Sum64()))
}

// ReplaceCatalog stores the catalog as the current one for its source.
// The previous catalog and its courses are removed in the same transaction.
func (s *CatalogService) ReplaceCatalog(ctx context.Context, catalog *coursecheck.Catalog) (bool, error) {
	if err := catalog.Validate(); err != nil {
		return false, err
	}

	hash := hashCatalog(catalog)
	catalog.ContentHash = hash
	catalog.CourseCount = len(catalog.Courses)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var storedHash string
	err = tx.QueryRowContext(ctx, "SELECT content_hash FROM catalogs WHERE source = ?", string(catalog.Source)).Scan(&storedHash)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return false, err
	case storedHash == hash:
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalogs WHERE source = ?", string(catalog.Source)); err != nil {
		return false, err
	}

	catalog.ID = uuid.New().String()
	catalog.ImportedAt = time.Now().UTC()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO catalogs (id, source, name, content_hash, imported_at)
		VALUES (?, ?, ?, ?, ?)
	`, catalog.ID, string(catalog.Source), catalog.Name, catalog.ContentHash,
		catalog.ImportedAt.Format(time.RFC3339)); err != nil {
		return false, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO courses (catalog_id, id, position, display_name, comparison_text, classification)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	for i, c := range catalog.Courses {
		if _, err := stmt.ExecContext(ctx, catalog.ID, c.ID, i, c.DisplayName, c.ComparisonText, c.Classification); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit catalog: %w", err)
	}
	return true, nil
}

// FindCatalogBySource retrieves a catalog with its courses in import order.
func (s *CatalogService) FindCatalogBySource(ctx context.Context, source coursecheck.Source) (*coursecheck.Catalog, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}

	var catalog coursecheck.Catalog
	var importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, name, content_hash, imported_at
		FROM catalogs
		WHERE source = ?
	`, string(source)).Scan(&catalog.ID, &catalog.Source, &catalog.Name, &catalog.ContentHash, &importedAt)

	if err == sql.ErrNoRows {
		return nil, coursecheck.Errorf(coursecheck.ENOTFOUND, "catalog not found")
	}
	if err != nil {
		return nil, err
	}

	catalog.ImportedAt, err = parseRFC3339(importedAt, "imported_at")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, display_name, comparison_text, classification
		FROM courses
		WHERE catalog_id = ?
		ORDER BY position
	`, catalog.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		course := coursecheck.Course{Source: catalog.Source}
		if err := rows.Scan(&course.ID, &course.DisplayName, &course.ComparisonText, &course.Classification); err != nil {
			return nil, err
		}
		catalog.Courses = append(catalog.Courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	catalog.CourseCount = len(catalog.Courses)
	return &catalog, nil
}

// FindCatalogs retrieves all catalogs with course counts, ordered by source.
func (s *CatalogService) FindCatalogs(ctx context.Context) ([]*coursecheck.Catalog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.source, c.name, c.content_hash, c.imported_at, COUNT(k.id)
		FROM catalogs c
		LEFT JOIN courses k ON k.catalog_id = c.id
		GROUP BY c.id
		ORDER BY c.source
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalogs []*coursecheck.Catalog
	for rows.Next() {
		var catalog coursecheck.Catalog
		var importedAt string

		if err := rows.Scan(&catalog.ID, &catalog.Source, &catalog.Name, &catalog.ContentHash,
			&importedAt, &catalog.CourseCount); err != nil {
			return nil, err
		}

		catalog.ImportedAt, err = parseRFC3339(importedAt, "imported_at")
		if err != nil {
			return nil, err
		}

		catalogs = append(catalogs, &catalog)
	}

	return catalogs, rows.Err()
}

// DeleteCatalog permanently removes the catalog of a source.
func (s *CatalogService) DeleteCatalog(ctx context.Context, source coursecheck.Source) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM catalogs WHERE source = ?", string(source))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return coursecheck.Errorf(coursecheck.ENOTFOUND, "catalog not found")
	}

	return nil
}
