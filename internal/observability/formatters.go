// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mschulz/resume-tailor/internal/types"
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

// PrintProfile outputs a human-readable summary of the selected profile.
func (p *Printer) PrintProfile(profile types.ProfileView, priorityTags []string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Profile:  %s\n", profile.Label))
	sb.WriteString(fmt.Sprintf("Headline: %s\n", profile.Headline))
	sb.WriteString("\n")

	if len(priorityTags) > 0 {
		sb.WriteString("Priority Tags:\n")
		count := min(len(priorityTags), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", priorityTags[i]))
		}
		if len(priorityTags) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(priorityTags)-maxItemsToShow))
		}
	}

	p.printBox("SELECTED PROFILE", sb.String())
}

// PrintResumeStats outputs the generation statistics panel: match rate,
// roles, bullets, and projects shown.
func (p *Printer) PrintResumeStats(resume *types.TailoredResume) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match rate:      %.1f%%\n", resume.Stats.MatchRate))
	sb.WriteString(fmt.Sprintf("Roles shown:     %d\n", resume.Stats.ExperienceCount))
	sb.WriteString(fmt.Sprintf("Key bullets:     %d\n", resume.Stats.TotalBullets))
	sb.WriteString(fmt.Sprintf("Projects:        %d\n", resume.Stats.ProjectCount))
	if len(resume.TopHighlights) > 0 {
		sb.WriteString(fmt.Sprintf("Top highlights:  %d\n", len(resume.TopHighlights)))
	}

	p.printBox("TAILORED RESUME", sb.String())
}

// PrintExperienceBreakdown outputs per-position match statistics.
func (p *Printer) PrintExperienceBreakdown(resume *types.TailoredResume) {
	var sb strings.Builder

	count := min(len(resume.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := resume.Experience[i]
		marker := "•"
		if !entry.HasMatches {
			marker = "○"
		}
		sb.WriteString(fmt.Sprintf("%s %s — %d/%d matched\n",
			marker, entry.Title, entry.MatchedBullets, entry.TotalBullets))
	}
	if len(resume.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more positions\n", len(resume.Experience)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE BREAKDOWN", sb.String())
}
