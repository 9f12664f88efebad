package coursecheck

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Catalog export formats.
const (
	FormatCSV  = "csv"
	FormatHTML = "html"
)

// Layout describes how the columns of a catalog export map to a Course.
type Layout struct {
	// Format is the export format, FormatCSV or FormatHTML.
	Format string

	// Delimiter is the single-character field separator for CSV exports.
	Delimiter string

	// Selector picks the table in HTML exports. Defaults to the first table.
	Selector string

	// NameColumn holds the human-readable course title.
	NameColumn string

	// ClassificationColumn holds the category label. Optional.
	ClassificationColumn string

	// Template builds the comparison text from columns, e.g.
	// "{Name} ({Number}, {Lecturer})".
	Template string
}

var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// Validate returns an error if the layout cannot be used to map rows.
func (l *Layout) Validate() error {
	switch l.Format {
	case FormatCSV:
		if utf8.RuneCountInString(l.Delimiter) != 1 {
			return Errorf(EINVALID, "csv delimiter must be a single character, got %q", l.Delimiter)
		}
	case FormatHTML:
	default:
		return Errorf(EINVALID, "unknown catalog format %q", l.Format)
	}
	if l.NameColumn == "" {
		return Errorf(EINVALID, "name column required")
	}
	if !placeholderRe.MatchString(l.Template) {
		return Errorf(EINVALID, "template %q references no columns", l.Template)
	}
	return nil
}

// Columns returns the column names the layout reads, in template order.
func (l *Layout) Columns() []string {
	cols := []string{l.NameColumn}
	if l.ClassificationColumn != "" {
		cols = append(cols, l.ClassificationColumn)
	}
	for _, m := range placeholderRe.FindAllStringSubmatch(l.Template, -1) {
		cols = append(cols, m[1])
	}
	return cols
}

// Render substitutes the template placeholders with values from row.
// Returns EINVALID if a placeholder names a column missing from row.
func (l *Layout) Render(row map[string]string) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(l.Template, func(m string) string {
		col := m[1 : len(m)-1]
		v, ok := row[col]
		if !ok && missing == "" {
			missing = col
		}
		return v
	})
	if missing != "" {
		return "", Errorf(EINVALID, "template column %q not found", missing)
	}
	return strings.TrimSpace(out), nil
}

// MapRow converts one row into a course. The ID is assigned by the caller.
func (l *Layout) MapRow(id string, source Source, row map[string]string) (*Course, error) {
	text, err := l.Render(row)
	if err != nil {
		return nil, err
	}
	name, ok := row[l.NameColumn]
	if !ok {
		return nil, Errorf(EINVALID, "name column %q not found", l.NameColumn)
	}
	course := &Course{
		ID:             id,
		DisplayName:    name,
		ComparisonText: text,
		Source:         source,
	}
	if l.ClassificationColumn != "" {
		course.Classification = row[l.ClassificationColumn]
	}
	if err := course.Validate(); err != nil {
		return nil, err
	}
	return course, nil
}
