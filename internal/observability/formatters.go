// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/approval"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
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

// PrintJobMatch outputs a human-readable summary of the match result.
func (p *Printer) PrintJobMatch(match *types.JobMatch) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fit score: %.2f\n", match.FitScore))
	sb.WriteString("\n")

	if len(match.MatchingSkills) > 0 {
		sb.WriteString("Matching skills:\n")
		count := min(len(match.MatchingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", match.MatchingSkills[i]))
		}
		if len(match.MatchingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.MatchingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(match.SkillGaps.RequiredMissing) > 0 {
		sb.WriteString("Missing required:\n")
		count := min(len(match.SkillGaps.RequiredMissing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", match.SkillGaps.RequiredMissing[i]))
		}
		if len(match.SkillGaps.RequiredMissing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.SkillGaps.RequiredMissing)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(match.SkillGaps.PreferredMissing) > 0 {
		sb.WriteString("Missing preferred:\n")
		count := min(len(match.SkillGaps.PreferredMissing), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", match.SkillGaps.PreferredMissing[i]))
		}
		if len(match.SkillGaps.PreferredMissing) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.SkillGaps.PreferredMissing)-3))
		}
		sb.WriteString("\n")
	}

	if len(match.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(match.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := match.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelectedProjects outputs the projects chosen for the tailored resume.
func (p *Printer) PrintSelectedProjects(projects []types.ProjectItem) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d projects:\n\n", len(projects)))

	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		project := projects[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, project.Name))
		if len(project.TechStack) > 0 {
			stack := strings.Join(project.TechStack, ", ")
			if len(stack) > 40 {
				stack = stack[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Stack: %s\n", stack))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more projects", len(projects)-maxItemsToShow))
	}

	p.printBox("SELECTED PROJECTS", sb.String())
}

// PrintReuseCandidate outputs the stored resume chosen for reuse.
func (p *Printer) PrintReuseCandidate(candidate *matching.ReuseCandidate) {
	if candidate == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume ID:  %s\n", candidate.ID))
	sb.WriteString(fmt.Sprintf("Fit score:  %.2f\n", candidate.FitScore))
	sb.WriteString(fmt.Sprintf("Similarity: %.2f\n", candidate.Similarity))
	sb.WriteString(fmt.Sprintf("Generated:  %s", candidate.GeneratedAt.Format("2006-01-02 15:04")))

	p.printBox("REUSABLE RESUME", sb.String())
}

// PrintProposalOutcomes outputs the results of the approval workflow.
func (p *Printer) PrintProposalOutcomes(outcomes []approval.ProposalOutcome) {
	if len(outcomes) == 0 {
		return
	}

	accepted, rejected, edited := 0, 0, 0
	for _, outcome := range outcomes {
		switch outcome.Status {
		case approval.StatusAccepted:
			accepted++
		case approval.StatusRejected:
			rejected++
		case approval.StatusEdited:
			edited++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Proposals reviewed: %d\n", len(outcomes)))
	sb.WriteString(fmt.Sprintf("Accepted: %d  Edited: %d  Rejected: %d\n\n", accepted, edited, rejected))

	count := min(len(outcomes), maxItemsToShow)
	for i := 0; i < count; i++ {
		outcome := outcomes[i]
		text := outcome.FinalText
		if text == "" {
			text = outcome.Proposal.OriginalText
		}
		if len(text) > 44 {
			text = text[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", statusGlyph(outcome.Status), text))
		if len(outcome.SkillsApplied) > 0 {
			skills := strings.Join(outcome.SkillsApplied, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    +%s\n", skills))
		}
	}

	if len(outcomes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more proposals", len(outcomes)-maxItemsToShow))
	}

	p.printBox("REWRITE OUTCOMES", strings.TrimSuffix(sb.String(), "\n"))
}

func statusGlyph(status approval.ProposalStatus) string {
	switch status {
	case approval.StatusAccepted:
		return "✓"
	case approval.StatusEdited:
		return "e"
	case approval.StatusRejected:
		return "✗"
	default:
		return "?"
	}
}
