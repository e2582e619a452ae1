// Package observability provides formatted output utilities for the
// CLI's human-readable mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Jeffawe/JobScanner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for human-readable mode
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisResult outputs a human-readable summary of a job
// posting analysis.
func (p *Printer) PrintAnalysisResult(result *types.JobAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:    %s\n", orDash(result.CompanyName)))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", orDash(result.JobTitle)))
	sb.WriteString(fmt.Sprintf("Level:      %s\n", orDash(result.ExperienceLevel)))
	if result.CompanyURL != "" {
		sb.WriteString(fmt.Sprintf("Careers:    %s\n", result.CompanyURL))
	}

	if len(result.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		for i, skill := range result.Skills {
			if i == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-maxItemsToShow))
				break
			}
			sb.WriteString("  " + formatSkill(skill) + "\n")
		}
	}

	if len(result.Keywords) > 0 {
		sb.WriteString("\nKeywords: " + strings.Join(result.Keywords, ", ") + "\n")
	}

	if len(result.ConfidenceScores) > 0 {
		sb.WriteString("\nConfidence:\n")
		names := make([]string, 0, len(result.ConfidenceScores))
		for name := range result.ConfidenceScores {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("  %-14s %.2f\n", name, result.ConfidenceScores[name]))
		}
	}

	p.printBox("Job Posting Analysis", sb.String())
}

// PrintCareerPage outputs a summary of a resolved career page.
func (p *Printer) PrintCareerPage(companyName string, page *types.CareerPageResult) {
	if page == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:    %s\n", companyName))
	sb.WriteString(fmt.Sprintf("URL:        %s\n", page.CareerURL))
	sb.WriteString(fmt.Sprintf("Domain:     %s\n", orDash(page.Domain)))
	sb.WriteString(fmt.Sprintf("Source:     %s\n", page.Source))
	sb.WriteString(fmt.Sprintf("Score:      %d\n", page.ConfidenceScore))
	sb.WriteString(fmt.Sprintf("Verified:   %s\n", page.LastVerified.Format("2006-01-02")))

	p.printBox("Career Page", sb.String())
}

// formatSkill renders one skill with its requirement cues.
func formatSkill(skill types.Skill) string {
	parts := []string{skill.Name}
	if skill.YearsExperience != "" {
		parts = append(parts, skill.YearsExperience)
	}
	if skill.IsRequired {
		parts = append(parts, "required")
	}
	return strings.Join(parts, " · ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
