// Package coursecheck answers natural-language questions about whether
// courses from one academic catalog are cross-credited in another. Course
// identity is resolved across independently formatted catalogs with fuzzy
// token-set matching rather than exact keys.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or approach (e.g., sqlite/, tokenset/, keyword/).
package coursecheck
