// Package approval drives the human-in-the-loop accept/reject/edit loop over
// rewrite proposals, producing the final resume.
package approval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/rewriting"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DecisionKind is the operator's verdict on a single proposal.
type DecisionKind string

// Legal decision kinds. Each proposal starts PENDING and reaches exactly one
// terminal state; no proposal is revisited once terminal.
const (
	DecisionAccept DecisionKind = "accept"
	DecisionReject DecisionKind = "reject"
	DecisionEdit   DecisionKind = "edit"
)

// ProposalStatus is the per-proposal state machine position.
type ProposalStatus string

// Proposal states.
const (
	StatusPending  ProposalStatus = "pending"
	StatusAccepted ProposalStatus = "accepted"
	StatusRejected ProposalStatus = "rejected"
	StatusEdited   ProposalStatus = "edited"
)

// Decision is the operator's response to a DecisionRequest. EditedText is
// consulted only when Kind is DecisionEdit.
type Decision struct {
	Kind       DecisionKind
	EditedText string
}

// DecisionRequest describes the pending decision the workflow is suspended
// on: the proposal under review and the set of legal decisions.
type DecisionRequest struct {
	Proposal       types.RewriteProposal
	Index          int
	Total          int
	LegalDecisions []DecisionKind
}

// Decider supplies operator decisions. The workflow suspends on Decide and
// resumes on its return, so any interaction surface (terminal, web form,
// scripted test) can drive the workflow without modification. Returning an
// error aborts the workflow.
type Decider interface {
	Decide(ctx context.Context, req DecisionRequest) (Decision, error)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx context.Context, req DecisionRequest) (Decision, error)

// Decide calls the wrapped function.
func (f DeciderFunc) Decide(ctx context.Context, req DecisionRequest) (Decision, error) {
	return f(ctx, req)
}

// ProposalOutcome records the terminal state one proposal reached.
type ProposalOutcome struct {
	Proposal      types.RewriteProposal
	Status        ProposalStatus
	FinalText     string
	SkillsApplied []string
}

// Workflow processes rewrite proposals strictly sequentially, one operator
// decision per proposal. Mutations are applied to a working copy; the input
// resume is returned untouched if the workflow aborts before completion.
type Workflow struct {
	decider  Decider
	ontology *types.SkillOntology
	now      func() time.Time
}

// NewWorkflow creates a workflow driven by the given decider. The ontology
// is used to categorize newly added skills in the final skills section
// refresh; it may be nil.
func NewWorkflow(decider Decider, ontology *types.SkillOntology) *Workflow {
	return &Workflow{
		decider:  decider,
		ontology: ontology,
		now:      time.Now,
	}
}

// ProcessResumeRewrite walks every proposal to a terminal state and returns
// the mutated working copy plus the per-proposal outcomes. The input resume
// is never modified: on any abort (decider error, context cancellation,
// malformed decision) the error return carries the failure and the caller's
// resume is exactly as passed in.
func (w *Workflow) ProcessResumeRewrite(ctx context.Context, resume *types.Resume, proposals []types.RewriteProposal) (*types.Resume, []ProposalOutcome, error) {
	working := resume.Clone()
	outcomes := make([]ProposalOutcome, 0, len(proposals))

	legal := []DecisionKind{DecisionAccept, DecisionReject, DecisionEdit}

	for i, proposal := range proposals {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("approval workflow canceled: %w", err)
		}

		decision, err := w.decider.Decide(ctx, DecisionRequest{
			Proposal:       proposal,
			Index:          i,
			Total:          len(proposals),
			LegalDecisions: legal,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("operator decision failed for %s: %w", proposal.Ref, err)
		}

		outcome, err := w.applyDecision(working, proposal, decision)
		if err != nil {
			return nil, nil, err
		}
		outcomes = append(outcomes, outcome)
	}

	w.refreshSkillsSection(working)
	working.Version++
	working.DateUpdated = w.now()

	return working, outcomes, nil
}

// applyDecision drives one proposal from PENDING to its terminal state and
// mutates the working copy accordingly.
func (w *Workflow) applyDecision(working *types.Resume, proposal types.RewriteProposal, decision Decision) (ProposalOutcome, error) {
	bullet, err := working.BulletAt(proposal.Ref)
	if err != nil {
		return ProposalOutcome{}, fmt.Errorf("proposal references invalid bullet: %w", err)
	}

	switch decision.Kind {
	case DecisionReject:
		return ProposalOutcome{Proposal: proposal, Status: StatusRejected, FinalText: bullet.Text}, nil

	case DecisionAccept:
		applyChange(bullet, proposal, proposal.ProposedText, proposal.SkillsAdded, w.now())
		return ProposalOutcome{
			Proposal:      proposal,
			Status:        StatusAccepted,
			FinalText:     proposal.ProposedText,
			SkillsApplied: proposal.SkillsAdded,
		}, nil

	case DecisionEdit:
		edited := decision.EditedText
		if edited == "" {
			return ProposalOutcome{}, fmt.Errorf("edit decision for %s carries no text", proposal.Ref)
		}
		if len(edited) > types.MaxBulletLength {
			return ProposalOutcome{}, fmt.Errorf("edited text for %s exceeds %d characters", proposal.Ref, types.MaxBulletLength)
		}
		// Re-validate instead of trusting the proposal: the edit only
		// gains the added skills that actually appear in the edited text.
		applied := rewriting.SkillsMentioned(edited, proposal.SkillsAdded)
		applyChange(bullet, proposal, edited, applied, w.now())
		return ProposalOutcome{
			Proposal:      proposal,
			Status:        StatusEdited,
			FinalText:     edited,
			SkillsApplied: applied,
		}, nil

	default:
		return ProposalOutcome{}, fmt.Errorf("unknown decision %q for %s", decision.Kind, proposal.Ref)
	}
}

// applyChange replaces the bullet's text, extends its skill set, and appends
// a history record.
func applyChange(bullet *types.Bullet, proposal types.RewriteProposal, newText string, skillsAdded []string, when time.Time) {
	bullet.History = append(bullet.History, types.BulletChange{
		OriginalText:    bullet.Text,
		NewText:         newText,
		Trigger:         proposal.Trigger,
		SkillsAdded:     skillsAdded,
		ApprovedByHuman: true,
		Timestamp:       when,
	})
	bullet.Text = newText

	existing := make(map[string]bool, len(bullet.Skills))
	for _, skill := range bullet.Skills {
		existing[normalizeSkill(skill)] = true
	}
	for _, skill := range skillsAdded {
		if !existing[normalizeSkill(skill)] {
			bullet.Skills = append(bullet.Skills, skill)
			existing[normalizeSkill(skill)] = true
		}
	}
}

// refreshSkillsSection folds skills demonstrated by bullets and project tech
// stacks back into the resume's categorized skills section, using the
// ontology's taxonomy for placement. Skills without an ontology category are
// left to the sections that already mention them.
func (w *Workflow) refreshSkillsSection(resume *types.Resume) {
	if w.ontology == nil {
		return
	}

	demonstrated := make(map[string]string) // normalized -> display
	collect := func(names []string) {
		for _, name := range names {
			key := normalizeSkill(name)
			if key != "" {
				if _, ok := demonstrated[key]; !ok {
					demonstrated[key] = name
				}
			}
		}
	}
	for _, exp := range resume.Experience {
		for _, bullet := range exp.Bullets {
			collect(bullet.Skills)
		}
	}
	for _, project := range resume.Projects {
		collect(project.TechStack)
		for _, bullet := range project.Bullets {
			collect(bullet.Skills)
		}
	}

	listed := make(map[string]bool)
	for _, list := range resume.Skills {
		for _, skill := range list {
			listed[normalizeSkill(skill)] = true
		}
	}

	for key, display := range demonstrated {
		if listed[key] {
			continue
		}
		skill := w.ontology.FindSkill(display)
		if skill == nil || skill.Category == "" {
			continue
		}
		if resume.Skills == nil {
			resume.Skills = make(map[string][]string)
		}
		resume.Skills[skill.Category] = append(resume.Skills[skill.Category], skill.Name)
		listed[key] = true
	}
}

func normalizeSkill(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
