// Package pipeline provides the high-level orchestration for tailoring a resume to a job.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/approval"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/rewriting"
	"github.com/jonathan/resume-matcher/internal/selection"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step constants for progress events
const (
	StepValidate         = "validate_inputs"
	StepReuseScan        = "reuse_scan"
	StepProjectSelection = "project_selection"
	StepJobMatch         = "job_match"
	StepProposals        = "rewrite_proposals"
	StepApproval         = "approval"
	StepPersist          = "persist"
)

// Category constants for grouping progress events by phase
const (
	CategoryMatching  = "matching"
	CategorySelection = "selection"
	CategoryRewriting = "rewriting"
	CategoryApproval  = "approval"
	CategoryStorage   = "storage"
)

// ResumeSaver persists a finished resume together with the job it was
// tailored for.
type ResumeSaver interface {
	SaveGeneratedResume(ctx context.Context, resume *types.Resume, jobSkills *types.JobSkills, generatedAt time.Time) (uuid.UUID, error)
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Resume     *types.Resume        // Required: candidate resume
	JobSkills  *types.JobSkills     // Required: extracted job skills
	Ontology   *types.SkillOntology // Optional: nil degrades to exact matching
	UserSkills *types.UserSkills    // Optional: allow-list for generated content

	ProjectStore selection.ProjectStore // Optional: project library for selection
	ResumeStore  matching.ResumeStore   // Optional: previously generated resumes
	Saver        ResumeSaver            // Optional: persistence for the final resume
	Decider      approval.Decider       // Required when proposals are generated
	Refiner      rewriting.TextRefiner  // Optional: LLM wording pass

	MinFitScore     float64
	MinSimilarity   float64
	MaxProjects     int
	MinProjectScore float64

	Verbose    bool
	Out        io.Writer // defaults to os.Stdout
	OnProgress ProgressCallback
}

// Result carries everything the pipeline produced. When Reused is set the
// run ended at the reuse check and the remaining fields are zero.
type Result struct {
	Match            *types.JobMatch
	Reused           *matching.ReuseCandidate
	SelectedProjects []types.ProjectItem
	Proposals        []types.RewriteProposal
	Outcomes         []approval.ProposalOutcome
	Final            *types.Resume
	SavedID          uuid.UUID
}

// logPrefix is used to distinguish concurrent log output
type logPrefix string

const (
	prefixReuse     logPrefix = "[Reuse]     "
	prefixSelection logPrefix = "[Selection] "
)

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates the full tailoring flow: validate, scan for a
// reusable resume and select projects in parallel, match, propose rewrites,
// run the approval loop, and persist the outcome.
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	if opts.Resume == nil || opts.JobSkills == nil {
		return nil, fmt.Errorf("resume and job skills are required")
	}

	fmt.Fprintf(out, "Step 1/6: Validating inputs...\n")
	if err := opts.Resume.Validate(); err != nil {
		return nil, fmt.Errorf("resume validation failed: %w", err)
	}
	emitProgress(&opts, StepValidate, CategoryMatching, "Validated resume and job skills", nil)

	matcher := matching.NewSkillMatcher(opts.Ontology, matching.DefaultFitWeights())

	// =========================================================================
	// PARALLEL EXECUTION: Reuse scan + Project selection
	// =========================================================================
	fmt.Fprintf(out, "Step 2/6: Scanning stored resumes and selecting projects...\n")

	g, gCtx := errgroup.WithContext(ctx)

	var reused *matching.ReuseCandidate
	var selected []types.ProjectItem
	var reuseMu, selMu sync.Mutex // Protect result assignments

	if opts.ResumeStore != nil {
		g.Go(func() error {
			checker := matching.NewReuseChecker(opts.ResumeStore, matcher, nil)
			candidate, err := checker.FindReusableResume(gCtx, opts.JobSkills, opts.MinFitScore, opts.MinSimilarity)
			if err != nil {
				return fmt.Errorf("reuse scan failed: %w", err)
			}
			if opts.Verbose && candidate != nil {
				fmt.Fprintf(out, "%sFound reusable resume %s\n", prefixReuse, candidate.ID)
			}
			reuseMu.Lock()
			reused = candidate
			reuseMu.Unlock()
			return nil
		})
	}

	if opts.ProjectStore != nil {
		g.Go(func() error {
			selector := selection.NewProjectSelector(opts.ProjectStore, opts.Ontology)
			projects, err := selector.SelectProjects(opts.JobSkills, opts.MaxProjects, opts.MinProjectScore)
			if err != nil {
				return fmt.Errorf("project selection failed: %w", err)
			}
			if opts.Verbose {
				fmt.Fprintf(out, "%sSelected %d projects\n", prefixSelection, len(projects))
			}
			selMu.Lock()
			selected = projects
			selMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if reused != nil {
		fmt.Fprintf(out, "Reusing stored resume %s (fit %.2f, similarity %.2f). Done.\n",
			reused.ID, reused.FitScore, reused.Similarity)
		if opts.Verbose {
			printer.PrintReuseCandidate(reused)
		}
		emitProgress(&opts, StepReuseScan, CategoryMatching,
			fmt.Sprintf("Reused stored resume %s", reused.ID), reused)
		return &Result{Reused: reused}, nil
	}
	emitProgress(&opts, StepReuseScan, CategoryMatching, "No stored resume qualified for reuse", nil)

	// Assemble the working resume: library projects replace the resume's own
	// project section when a selection was made.
	working := opts.Resume.Clone()
	if opts.ProjectStore != nil && len(selected) > 0 {
		working.Projects = selected
		if opts.Verbose {
			printer.PrintSelectedProjects(selected)
		}
	}
	emitProgress(&opts, StepProjectSelection, CategorySelection,
		fmt.Sprintf("Selected %d projects", len(selected)), selected)

	fmt.Fprintf(out, "Step 3/6: Matching resume against job skills...\n")
	match := matcher.MatchJob(working, opts.JobSkills)
	if opts.Verbose {
		printer.PrintJobMatch(match)
	}
	emitProgress(&opts, StepJobMatch, CategoryMatching,
		fmt.Sprintf("Fit score %.2f with %d required gaps", match.FitScore, len(match.SkillGaps.RequiredMissing)), match)

	fmt.Fprintf(out, "Step 4/6: Generating rewrite proposals...\n")
	rewriter := rewriting.NewRewriter(opts.Ontology, opts.UserSkills, opts.Refiner)
	proposals := rewriter.GenerateVariations(ctx, working, match)
	emitProgress(&opts, StepProposals, CategoryRewriting,
		fmt.Sprintf("Generated %d proposals", len(proposals)), nil)

	fmt.Fprintf(out, "Step 5/6: Reviewing %d proposals...\n", len(proposals))
	if opts.Decider == nil && len(proposals) > 0 {
		return nil, fmt.Errorf("proposals pending but no decider configured")
	}

	final := working
	var outcomes []approval.ProposalOutcome
	if opts.Decider != nil {
		workflow := approval.NewWorkflow(opts.Decider, opts.Ontology)
		var err error
		final, outcomes, err = workflow.ProcessResumeRewrite(ctx, working, proposals)
		if err != nil {
			return nil, fmt.Errorf("approval workflow failed: %w", err)
		}
		if opts.Verbose {
			printer.PrintProposalOutcomes(outcomes)
		}
	}
	emitProgress(&opts, StepApproval, CategoryApproval,
		fmt.Sprintf("Applied %d reviewed proposals", len(outcomes)), nil)

	result := &Result{
		Match:            match,
		SelectedProjects: selected,
		Proposals:        proposals,
		Outcomes:         outcomes,
		Final:            final,
	}

	fmt.Fprintf(out, "Step 6/6: Persisting tailored resume...\n")
	if opts.Saver != nil {
		// Persistence is best-effort: the tailored resume in the result is
		// already complete and a storage failure must not discard it.
		id, err := opts.Saver.SaveGeneratedResume(ctx, final, opts.JobSkills, time.Now().UTC())
		if err != nil {
			fmt.Fprintf(out, "Warning: failed to persist tailored resume: %v\n", err)
		} else {
			result.SavedID = id
			emitProgress(&opts, StepPersist, CategoryStorage,
				fmt.Sprintf("Stored tailored resume %s", id), nil)
		}
	}

	fmt.Fprintf(out, "Done.\n")
	return result, nil
}
