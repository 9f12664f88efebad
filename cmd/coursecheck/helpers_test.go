package main_test

import (
	"bytes"
	"context"
	"time"

	"github.com/fwojciec/coursecheck"
	main "github.com/fwojciec/coursecheck/cmd/coursecheck"
	"github.com/fwojciec/coursecheck/keyword"
	"github.com/fwojciec/coursecheck/match"
	"github.com/fwojciec/coursecheck/mock"
	"github.com/fwojciec/coursecheck/tokenset"
)

const simCSV = `event;course_number;lecturer;classification
Blockchain in Finance;SIM101;Prof. X;FinTech
Risk Management;SIM210;Dr. Y;Finance
`

const fintechCSV = `Name;Number;Lecturer;Semester;ECTS
Blockchain in Finance;FT201;Prof. X;Fall;6
Quantum Cryptography;FT450;Dr. Z;Spring;5
`

func testCourse(source coursecheck.Source, id, name, text, classification string) *coursecheck.Course {
	return &coursecheck.Course{
		ID:             id,
		DisplayName:    name,
		ComparisonText: text,
		Classification: classification,
		Source:         source,
	}
}

// testCatalogService serves the SIM and FinTech fixture catalogs.
func testCatalogService() *mock.CatalogService {
	catalogs := map[coursecheck.Source]*coursecheck.Catalog{
		coursecheck.SourceProgramA: {
			ID: "cat-a", Source: coursecheck.SourceProgramA, Name: "SIM",
			Courses: []*coursecheck.Course{
				testCourse(coursecheck.SourceProgramA, "0", "Blockchain in Finance", "Blockchain in Finance (SIM101, Prof. X, FinTech)", "FinTech"),
				testCourse(coursecheck.SourceProgramA, "1", "Risk Management", "Risk Management (SIM210, Dr. Y, Finance)", "Finance"),
			},
		},
		coursecheck.SourceProgramB: {
			ID: "cat-b", Source: coursecheck.SourceProgramB, Name: "FinTech",
			Courses: []*coursecheck.Course{
				testCourse(coursecheck.SourceProgramB, "0", "Blockchain in Finance", "Blockchain in Finance (FT201, Prof. X, Fall, 6 ECTS)", ""),
				testCourse(coursecheck.SourceProgramB, "1", "Quantum Cryptography", "Quantum Cryptography (FT450, Dr. Z, Spring, 5 ECTS)", ""),
			},
		},
	}
	return &mock.CatalogService{
		FindCatalogBySourceFn: func(_ context.Context, source coursecheck.Source) (*coursecheck.Catalog, error) {
			if c, ok := catalogs[source]; ok {
				return c, nil
			}
			return nil, coursecheck.Errorf(coursecheck.ENOTFOUND, "catalog not found")
		},
	}
}

// testDeps returns dependencies with real matching services over the given catalogs.
func testDeps(catalogs coursecheck.CatalogService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:        context.Background(),
		Stdout:     stdout,
		Stderr:     stderr,
		Config:     coursecheck.DefaultConfig(),
		Catalogs:   catalogs,
		Classifier: keyword.NewClassifier(),
		Matcher:    match.NewMatcher(tokenset.NewScorer()),
		Now:        func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}, stdout, stderr
}
