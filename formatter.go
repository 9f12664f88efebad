package coursecheck

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatCrossListing formats one accepted course as "<name> (<A> classification: <c>)".
// The classification part is omitted when the program A record has none.
func FormatCrossListing(entry CrossListing, programA string) string {
	if entry.Classification == "" {
		return entry.Course.DisplayName
	}
	return fmt.Sprintf("%s (%s classification: %s)", entry.Course.DisplayName, programA, entry.Classification)
}

// FormatAnswer formats an answer for terminal display.
// Enumerations list one course per line; verdicts are a single line.
func FormatAnswer(a *Answer) string {
	if a.Intent == IntentEnumerate {
		if len(a.Accepted) == 0 {
			return fmt.Sprintf("No %s courses are currently listed as accepted in %s.", a.ProgramB, a.ProgramA)
		}
		lines := make([]string, 0, len(a.Accepted)+1)
		lines = append(lines, fmt.Sprintf("Accepted %s courses in %s:", a.ProgramB, a.ProgramA))
		for _, entry := range a.Accepted {
			lines = append(lines, "- "+FormatCrossListing(entry, a.ProgramA))
		}
		return strings.Join(lines, "\n")
	}

	if a.Verdict == nil {
		return FormatVerdict(Verdict{Kind: VerdictNotFound}, a.ProgramA, a.ProgramB)
	}
	return FormatVerdict(*a.Verdict, a.ProgramA, a.ProgramB)
}

// FormatVerdict formats a lookup verdict as a one-line message.
func FormatVerdict(v Verdict, programA, programB string) string {
	switch v.Kind {
	case VerdictAccepted:
		entry := CrossListing{Course: v.Course, Match: v.Match, Classification: v.Classification}
		return fmt.Sprintf("This course is accepted in %s: %s", programA, FormatCrossListing(entry, programA))
	case VerdictAmbiguous:
		return fmt.Sprintf("This course appears in both %s and %s but does not match closely enough to confirm cross-listing.", programA, programB)
	case VerdictOnlyInProgramB:
		return fmt.Sprintf("This course is only available in %s and does not count toward %s.", programB, programA)
	case VerdictOnlyInProgramA:
		return fmt.Sprintf("This course is only available in %s and is not part of the %s catalog.", programA, programB)
	default:
		return "This course is not found in either program."
	}
}

// Report is an exported cross-listing table.
type Report struct {
	ProgramA    string
	ProgramB    string
	Threshold   int
	GeneratedAt time.Time
	Entries     []CrossListing
}

// FormatReport formats a report as markdown with YAML frontmatter.
func FormatReport(r *Report) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("program_a: " + strconv.Quote(r.ProgramA) + "\n")
	b.WriteString("program_b: " + strconv.Quote(r.ProgramB) + "\n")
	b.WriteString("threshold: " + strconv.Itoa(r.Threshold) + "\n")
	b.WriteString("generated: " + r.GeneratedAt.Format("2006-01-02") + "\n")
	b.WriteString("accepted: " + strconv.Itoa(len(r.Entries)) + "\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s courses accepted in %s\n\n", r.ProgramB, r.ProgramA)

	if len(r.Entries) == 0 {
		fmt.Fprintf(&b, "No %s courses are currently listed as accepted in %s.\n", r.ProgramB, r.ProgramA)
		return b.String()
	}

	fmt.Fprintf(&b, "| %s course | %s course | Classification |\n", r.ProgramB, r.ProgramA)
	b.WriteString("|---|---|---|\n")
	for _, e := range r.Entries {
		matched := ""
		if e.Match != nil {
			matched = e.Match.DisplayName
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeCell(e.Course.DisplayName), escapeCell(matched), escapeCell(e.Classification))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// ReportWriter persists an exported cross-listing report.
type ReportWriter interface {
	WriteReport(ctx context.Context, path string, report *Report) error
}
