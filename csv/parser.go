// Package csv reads delimited catalog exports into normalized courses.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/coursecheck"
)

// Ensure Parser implements coursecheck.CatalogParser at compile time.
var _ coursecheck.CatalogParser = (*Parser)(nil)

// Parser reads catalogs with a header row. Course IDs count non-blank data
// rows from 0; row numbers in errors count every data row from 1.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseCatalog reads every row of r and maps it with the layout.
func (p *Parser) ParseCatalog(r io.Reader, source coursecheck.Source, layout coursecheck.Layout) ([]*coursecheck.Course, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = []rune(layout.Delimiter)[0]
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, coursecheck.Errorf(coursecheck.EINVALID, "catalog is empty, header row required")
	}
	if err != nil {
		return nil, parseError(err)
	}
	header = trimAll(header)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if err := checkColumns(header, layout); err != nil {
		return nil, err
	}

	var courses []*coursecheck.Course
	for n := 1; ; n++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}
		if isBlank(record) {
			continue
		}
		i := len(courses)

		row := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(record) {
				row[col] = strings.TrimSpace(record[j])
			} else {
				row[col] = ""
			}
		}

		course, err := layout.MapRow(strconv.Itoa(i), source, row)
		if err != nil {
			return nil, coursecheck.Errorf(coursecheck.EINVALID, "row %d: %s", n, coursecheck.ErrorMessage(err))
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func checkColumns(header []string, layout coursecheck.Layout) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range layout.Columns() {
		if !present[col] {
			return coursecheck.Errorf(coursecheck.EINVALID, "column %q not found in header", col)
		}
	}
	return nil
}

func parseError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return coursecheck.Errorf(coursecheck.EINVALID, "malformed csv at line %d: %s", perr.Line, perr.Err)
	}
	return fmt.Errorf("failed to read catalog: %w", err)
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
