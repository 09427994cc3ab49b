// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPredictions outputs the ranked role predictions.
func (p *Printer) PrintPredictions(predictions []types.RolePrediction) {
	if len(predictions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(predictions), maxItemsToShow)
	for i := 0; i < count; i++ {
		pred := predictions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, pred.Role))
		sb.WriteString(fmt.Sprintf("    Confidence: %.2f\n", pred.Confidence))
	}
	if len(predictions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more roles\n", len(predictions)-maxItemsToShow))
	}

	p.printBox("PREDICTED ROLES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the skills extracted from the resume.
func (p *Printer) PrintSkills(skills types.SkillSet) {
	sorted := skills.Sorted()
	if len(sorted) == 0 {
		p.printBox("EXTRACTED SKILLS", "No known skills found in resume")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n\n", len(sorted)))

	line := ""
	for _, skill := range sorted {
		if line != "" && len(line)+len(skill)+2 > boxWidth-6 {
			sb.WriteString(line + "\n")
			line = ""
		}
		if line == "" {
			line = skill
		} else {
			line += ", " + skill
		}
	}
	if line != "" {
		sb.WriteString(line)
	}

	p.printBox("EXTRACTED SKILLS", sb.String())
}

// PrintGaps outputs the missing skills per predicted role.
func (p *Printer) PrintGaps(gaps types.MissingSkillReport) {
	if len(gaps) == 0 {
		return
	}

	var sb strings.Builder
	for i, gap := range gaps {
		if gap.Satisfied() {
			sb.WriteString(fmt.Sprintf("✓ %s: all required skills covered\n", gap.Role))
		} else {
			sb.WriteString(fmt.Sprintf("⚠ %s (%d missing)\n", gap.Role, len(gap.MissingSkills)))
			count := min(len(gap.MissingSkills), maxItemsToShow)
			for j := 0; j < count; j++ {
				sb.WriteString(fmt.Sprintf("  • %s\n", gap.MissingSkills[j]))
			}
			if len(gap.MissingSkills) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gap.MissingSkills)-maxItemsToShow))
			}
		}
		if i < len(gaps)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the recommended courses per role gap.
func (p *Printer) PrintRecommendations(recommendations []types.CourseRecommendation) {
	if len(recommendations) == 0 {
		p.printBox("COURSE RECOMMENDATIONS", "No recommendations: all roles covered")
		return
	}

	for _, rec := range recommendations {
		var sb strings.Builder

		if len(rec.Courses) == 0 {
			sb.WriteString("No matching courses found\n")
		}
		for i, course := range rec.Courses {
			title := course.Title
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
			sb.WriteString(fmt.Sprintf("    %s | rating %s | %s enrolled\n",
				course.Organization, course.Rating, course.Enrolled))
			if i < len(rec.Courses)-1 {
				sb.WriteString("\n")
			}
		}
		if rec.Dropped > 0 {
			sb.WriteString(fmt.Sprintf("\n%d recommendations were out of range and dropped", rec.Dropped))
		}

		p.printBox("COURSES FOR "+strings.ToUpper(rec.Role), strings.TrimSuffix(sb.String(), "\n"))
	}
}
