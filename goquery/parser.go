// Package goquery reads catalogs published as HTML tables using goquery.
package goquery

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursecheck"
)

// DefaultSelector picks the first table of the page.
const DefaultSelector = "table"

// Ensure Parser implements coursecheck.CatalogParser at compile time.
var _ coursecheck.CatalogParser = (*Parser)(nil)

// Parser reads the first table matching the layout selector.
// Header cells come from the table head, or the first row when there is none.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseCatalog maps every data row of the selected table with the layout.
func (p *Parser) ParseCatalog(r io.Reader, source coursecheck.Source, layout coursecheck.Layout) ([]*coursecheck.Course, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, coursecheck.Errorf(coursecheck.EINVALID, "failed to parse HTML: %v", err)
	}

	selector := layout.Selector
	if selector == "" {
		selector = DefaultSelector
	}
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, coursecheck.Errorf(coursecheck.EINVALID, "no table matching %q", selector)
	}

	header, rows, err := splitHeader(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(header, layout); err != nil {
		return nil, err
	}

	var courses []*coursecheck.Course
	var rowErr error
	rows.EachWithBreak(func(n int, tr *goquery.Selection) bool {
		record := cells(tr)
		if isBlank(record) {
			return true
		}
		i := len(courses)

		row := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(record) {
				row[col] = record[j]
			} else {
				row[col] = ""
			}
		}

		course, err := layout.MapRow(strconv.Itoa(i), source, row)
		if err != nil {
			rowErr = coursecheck.Errorf(coursecheck.EINVALID, "row %d: %s", n+1, coursecheck.ErrorMessage(err))
			return false
		}
		courses = append(courses, course)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return courses, nil
}

// splitHeader returns the header cells and the remaining data rows.
func splitHeader(table *goquery.Selection) ([]string, *goquery.Selection, error) {
	rows := table.Find("tr")
	if head := table.Find("thead tr").First(); head.Length() > 0 {
		return cells(head), rows.Not("thead tr"), nil
	}
	if rows.Length() == 0 {
		return nil, nil, coursecheck.Errorf(coursecheck.EINVALID, "table has no rows, header row required")
	}
	return cells(rows.First()), rows.Slice(1, goquery.ToEnd), nil
}

// cells returns the collapsed text of each th or td child.
func cells(tr *goquery.Selection) []string {
	return tr.Children().Filter("th, td").Map(func(_ int, cell *goquery.Selection) string {
		return strings.Join(strings.Fields(cell.Text()), " ")
	})
}

func checkColumns(header []string, layout coursecheck.Layout) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	for _, col := range layout.Columns() {
		if !present[col] {
			return coursecheck.Errorf(coursecheck.EINVALID, "column %q not found in table header", col)
		}
	}
	return nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if f != "" {
			return false
		}
	}
	return true
}
