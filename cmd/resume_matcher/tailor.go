package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/approval"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/library"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/selection"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a job through the full pipeline",
	Long:  "Runs the full tailoring pipeline: checks stored resumes for reuse, selects relevant library projects, scores the match, proposes bullet rewrites, walks each proposal through interactive approval, and writes the tailored resume.",
	RunE:  runTailor,
}

var (
	tailorConfigPath    string
	tailorResume        string
	tailorJob           string
	tailorOntology      string
	tailorUserSkills    string
	tailorLibraryPath   string
	tailorDatabaseURL   string
	tailorAPIKey        string
	tailorMinFit        float64
	tailorMinSimilarity float64
	tailorMaxProjects   int
	tailorMinScore      float64
	tailorAcceptAll     bool
	tailorVerbose       bool
	tailorOutput        string
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorConfigPath, "config", "c", "", "Path to config JSON file")
	tailorCmd.Flags().StringVarP(&tailorResume, "resume", "r", "", "Path to resume JSON file")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job skills JSON file")
	tailorCmd.Flags().StringVar(&tailorOntology, "ontology", "", "Path to skill ontology JSON file")
	tailorCmd.Flags().StringVar(&tailorUserSkills, "user-skills", "", "Path to user skills allow-list JSON file")
	tailorCmd.Flags().StringVarP(&tailorLibraryPath, "library", "l", "", "Path to project library JSON file")
	tailorCmd.Flags().StringVar(&tailorDatabaseURL, "db", "", "PostgreSQL connection URL for reuse checks and persistence (defaults to DATABASE_URL)")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key for LLM phrasing (defaults to GEMINI_API_KEY; omit for deterministic rewrites)")
	tailorCmd.Flags().Float64Var(&tailorMinFit, "min-fit-score", 0, "Minimum fit score a stored resume must reach for reuse")
	tailorCmd.Flags().Float64Var(&tailorMinSimilarity, "min-similarity", 0, "Minimum job similarity a stored resume must reach for reuse")
	tailorCmd.Flags().IntVar(&tailorMaxProjects, "max-projects", 0, "Maximum number of library projects to select")
	tailorCmd.Flags().Float64Var(&tailorMinScore, "min-project-score", 0, "Minimum relevance score a project must reach")
	tailorCmd.Flags().BoolVarP(&tailorAcceptAll, "yes", "y", false, "Accept every proposal without prompting")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed match, selection, and outcome reports")
	tailorCmd.Flags().StringVarP(&tailorOutput, "out", "o", "", "Path to output tailored resume JSON file (required)")

	if err := tailorCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(config.Config{
		Resume:          tailorResume,
		Job:             tailorJob,
		Ontology:        tailorOntology,
		UserSkills:      tailorUserSkills,
		ProjectLibrary:  tailorLibraryPath,
		DatabaseURL:     tailorDatabaseURL,
		APIKey:          tailorAPIKey,
		MinFitScore:     tailorMinFit,
		MinSimilarity:   tailorMinSimilarity,
		MaxProjects:     tailorMaxProjects,
		MinProjectScore: tailorMinScore,
	}, tailorConfigPath)
	if err != nil {
		return err
	}

	resume, jobSkills, ontology, userSkills, err := loadMatchInputs(cfg)
	if err != nil {
		return err
	}

	var projectStore selection.ProjectStore
	if cfg.ProjectLibrary != "" {
		lib, err := library.Load(cfg.ProjectLibrary)
		if err != nil {
			return err
		}
		projectStore = lib
	}

	var resumeStore matching.ResumeStore
	var saver pipeline.ResumeSaver
	if databaseURL := resolveDatabaseURL(cfg.DatabaseURL); databaseURL != "" {
		store, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
		resumeStore = store
		saver = store
	}

	refiner, cleanup, err := newRefiner(ctx, resolveAPIKey(cfg.APIKey))
	if err != nil {
		return err
	}
	defer cleanup()

	var decider approval.Decider = approval.NewConsoleDecider(os.Stdin, os.Stdout)
	if tailorAcceptAll {
		decider = approval.DeciderFunc(func(context.Context, approval.DecisionRequest) (approval.Decision, error) {
			return approval.Decision{Kind: approval.DecisionAccept}, nil
		})
	}

	result, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Resume:          resume,
		JobSkills:       jobSkills,
		Ontology:        ontology,
		UserSkills:      userSkills,
		ProjectStore:    projectStore,
		ResumeStore:     resumeStore,
		Saver:           saver,
		Decider:         decider,
		Refiner:         refiner,
		MinFitScore:     cfg.MinFitScore,
		MinSimilarity:   cfg.MinSimilarity,
		MaxProjects:     cfg.MaxProjects,
		MinProjectScore: cfg.MinProjectScore,
		Verbose:         tailorVerbose,
		Out:             os.Stdout,
	})
	if err != nil {
		return err
	}

	final := result.Final
	if result.Reused != nil {
		final = result.Reused.Resume
	}
	if err := writeJSONOutput(tailorOutput, final); err != nil {
		return err
	}

	fmt.Printf("Wrote tailored resume to %s\n", tailorOutput)
	if result.SavedID != uuid.Nil {
		fmt.Printf("Stored tailored resume as %s\n", result.SavedID)
	}
	return nil
}
