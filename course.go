package coursecheck

import (
	"context"
	"io"
	"strings"
	"time"
)

// Source identifies which catalog a course belongs to.
type Source string

// Source constants. Program A is the crediting program whose records carry a
// classification; program B is the program whose courses are checked.
const (
	SourceProgramA Source = "program_a"
	SourceProgramB Source = "program_b"
)

// Validate returns an error if the source is not a known program.
func (s Source) Validate() error {
	switch s {
	case SourceProgramA, SourceProgramB:
		return nil
	}
	return Errorf(EINVALID, "unknown catalog source %q", string(s))
}

// Course represents one normalized catalog record.
type Course struct {
	ID             string `json:"id"`
	DisplayName    string `json:"displayName"`
	ComparisonText string `json:"comparisonText"` // Never stored case-folded
	Classification string `json:"classification,omitempty"`
	Source         Source `json:"source"`
}

// Validate returns an error if the course contains invalid fields.
func (c *Course) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "course ID required")
	}
	if strings.TrimSpace(c.ComparisonText) == "" {
		return Errorf(EINVALID, "course %s: comparison text required", c.ID)
	}
	return c.Source.Validate()
}

// Catalog is an imported, immutable set of courses for one program.
type Catalog struct {
	ID          string    `json:"id"`
	Source      Source    `json:"source"`
	Name        string    `json:"name"`
	ContentHash string    `json:"contentHash"`
	CourseCount int       `json:"courseCount"`
	Courses     []*Course `json:"courses,omitempty"`
	ImportedAt  time.Time `json:"importedAt"`
}

// Validate returns an error if the catalog or any of its courses is invalid.
func (c *Catalog) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if c.Name == "" {
		return Errorf(EINVALID, "catalog name required")
	}
	seen := make(map[string]struct{}, len(c.Courses))
	for _, course := range c.Courses {
		if err := course.Validate(); err != nil {
			return err
		}
		if course.Source != c.Source {
			return Errorf(EINVALID, "course %s belongs to %s, not %s", course.ID, course.Source, c.Source)
		}
		if _, ok := seen[course.ID]; ok {
			return Errorf(EINVALID, "duplicate course ID %s in catalog %q", course.ID, c.Name)
		}
		seen[course.ID] = struct{}{}
	}
	return nil
}

// Snapshot holds both loaded catalogs. It is read-only once built and may be
// shared across concurrent requests.
type Snapshot struct {
	ProgramA *Catalog
	ProgramB *Catalog
}

// CatalogService represents a service for managing imported catalogs.
type CatalogService interface {
	// ReplaceCatalog stores the catalog as the current one for its source.
	// Returns false without writing if the content is unchanged.
	ReplaceCatalog(ctx context.Context, catalog *Catalog) (bool, error)

	// FindCatalogBySource retrieves a catalog including its courses.
	// Returns ENOTFOUND if no catalog was imported for the source.
	FindCatalogBySource(ctx context.Context, source Source) (*Catalog, error)

	// FindCatalogs retrieves all imported catalogs without their courses.
	FindCatalogs(ctx context.Context) ([]*Catalog, error)

	// DeleteCatalog permanently removes a catalog and its courses.
	// Returns ENOTFOUND if no catalog was imported for the source.
	DeleteCatalog(ctx context.Context, source Source) error
}

// LoadSnapshot loads both programs' catalogs from the service.
func LoadSnapshot(ctx context.Context, catalogs CatalogService) (*Snapshot, error) {
	a, err := catalogs.FindCatalogBySource(ctx, SourceProgramA)
	if err != nil {
		return nil, snapshotError(err, SourceProgramA)
	}
	b, err := catalogs.FindCatalogBySource(ctx, SourceProgramB)
	if err != nil {
		return nil, snapshotError(err, SourceProgramB)
	}
	return &Snapshot{ProgramA: a, ProgramB: b}, nil
}

func snapshotError(err error, source Source) error {
	if ErrorCode(err) == ENOTFOUND {
		return Errorf(ENOTFOUND, "no catalog imported for %s. Run 'coursecheck import' first", source)
	}
	return err
}

// CatalogParser reads a tabular catalog export into normalized courses.
type CatalogParser interface {
	// ParseCatalog reads all rows from r and maps them with the layout.
	// Returns EINVALID if a row cannot be mapped to a valid course.
	ParseCatalog(r io.Reader, source Source, layout Layout) ([]*Course, error)
}
