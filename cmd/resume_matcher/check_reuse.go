package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var checkReuseCmd = &cobra.Command{
	Use:   "check-reuse",
	Short: "Check whether a stored resume can be reused for a job",
	Long:  "Scans previously generated resumes in the database for one whose fit score and job similarity both meet the reuse thresholds, so a sufficiently similar job gets an existing resume instead of a fresh tailoring run.",
	RunE:  runCheckReuse,
}

var (
	reuseConfigPath    string
	reuseJob           string
	reuseOntology      string
	reuseDatabaseURL   string
	reuseMinFit        float64
	reuseMinSimilarity float64
	reuseOutput        string
)

func init() {
	checkReuseCmd.Flags().StringVarP(&reuseConfigPath, "config", "c", "", "Path to config JSON file")
	checkReuseCmd.Flags().StringVarP(&reuseJob, "job", "j", "", "Path to job skills JSON file")
	checkReuseCmd.Flags().StringVar(&reuseOntology, "ontology", "", "Path to skill ontology JSON file")
	checkReuseCmd.Flags().StringVar(&reuseDatabaseURL, "db", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	checkReuseCmd.Flags().Float64Var(&reuseMinFit, "min-fit-score", 0, "Minimum fit score a stored resume must reach")
	checkReuseCmd.Flags().Float64Var(&reuseMinSimilarity, "min-similarity", 0, "Minimum job similarity a stored resume must reach")
	checkReuseCmd.Flags().StringVarP(&reuseOutput, "out", "o", "", "Path to write the reused resume JSON to (optional)")

	rootCmd.AddCommand(checkReuseCmd)
}

func runCheckReuse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(config.Config{
		Job:           reuseJob,
		Ontology:      reuseOntology,
		DatabaseURL:   reuseDatabaseURL,
		MinFitScore:   reuseMinFit,
		MinSimilarity: reuseMinSimilarity,
	}, reuseConfigPath)
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("job skills path is required (set --job or the config file)")
	}

	databaseURL := resolveDatabaseURL(cfg.DatabaseURL)
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set --db or DATABASE_URL)")
	}

	jobSkills, err := ingestion.LoadJobSkills(cfg.Job)
	if err != nil {
		return err
	}
	ontology, err := ingestion.LoadOntology(cfg.Ontology)
	if err != nil {
		return err
	}

	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	matcher := matching.NewSkillMatcher(ontology, matching.DefaultFitWeights())
	checker := matching.NewReuseChecker(store, matcher, nil)

	candidate, err := checker.FindReusableResume(ctx, jobSkills, cfg.MinFitScore, cfg.MinSimilarity)
	if err != nil {
		return err
	}
	if candidate == nil {
		fmt.Println("No stored resume qualifies for reuse.")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReuseCandidate(candidate)

	if reuseOutput != "" {
		if err := writeJSONOutput(reuseOutput, candidate.Resume); err != nil {
			return err
		}
		fmt.Printf("Wrote reused resume to %s\n", reuseOutput)
	}
	return nil
}
