// Package approval drives the human-in-the-loop accept/reject/edit loop over
// rewrite proposals, producing the final resume.
package approval

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// ConsoleDecider prompts an operator on a terminal-style reader/writer pair.
// Both are injected so tests can script the interaction.
type ConsoleDecider struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDecider creates a decider reading decisions from in and writing
// prompts to out.
func NewConsoleDecider(in io.Reader, out io.Writer) *ConsoleDecider {
	return &ConsoleDecider{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Decide displays the proposal and reads one decision. Unrecognized input
// re-prompts; EOF aborts the workflow.
//
//nolint:errcheck // writing prompts to the operator terminal; errors are not recoverable
func (d *ConsoleDecider) Decide(ctx context.Context, req DecisionRequest) (Decision, error) {
	fmt.Fprintf(d.out, "\nProposal %d of %d (%s)\n", req.Index+1, req.Total, req.Proposal.Ref)
	if req.Proposal.Trigger != "" {
		fmt.Fprintf(d.out, "Why:      %s\n", req.Proposal.Trigger)
	}
	fmt.Fprintf(d.out, "Original: %s\n", req.Proposal.OriginalText)
	fmt.Fprintf(d.out, "Proposed: %s\n", req.Proposal.ProposedText)
	if len(req.Proposal.SkillsAdded) > 0 {
		fmt.Fprintf(d.out, "Adds:     %s\n", strings.Join(req.Proposal.SkillsAdded, ", "))
	}

	for {
		if err := ctx.Err(); err != nil {
			return Decision{}, err
		}

		fmt.Fprintf(d.out, "[y = accept / n = reject / e = edit]: ")
		line, err := d.in.ReadString('\n')
		if err != nil && line == "" {
			return Decision{}, fmt.Errorf("operator input closed: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes", "":
			return Decision{Kind: DecisionAccept}, nil
		case "n", "no":
			return Decision{Kind: DecisionReject}, nil
		case "e", "edit":
			fmt.Fprintf(d.out, "Enter replacement text: ")
			edited, err := d.in.ReadString('\n')
			if err != nil && edited == "" {
				return Decision{}, fmt.Errorf("operator input closed: %w", err)
			}
			return Decision{Kind: DecisionEdit, EditedText: strings.TrimSpace(edited)}, nil
		default:
			fmt.Fprintf(d.out, "Invalid choice. Please enter y, n, or e.\n")
		}
	}
}
