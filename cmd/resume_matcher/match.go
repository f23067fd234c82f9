package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job's skill requirements",
	Long:  "Matches a resume against a job's required, preferred, and soft skills, producing a fit score, a skill-gap report, and rewrite recommendations.",
	RunE:  runMatch,
}

var (
	matchConfigPath string
	matchResume     string
	matchJob        string
	matchOntology   string
	matchOutput     string
)

func init() {
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Path to config JSON file")
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume JSON file")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job skills JSON file")
	matchCmd.Flags().StringVar(&matchOntology, "ontology", "", "Path to skill ontology JSON file")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JobMatch JSON file (optional)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Resume:   matchResume,
		Job:      matchJob,
		Ontology: matchOntology,
	}, matchConfigPath)
	if err != nil {
		return err
	}

	resume, jobSkills, ontology, _, err := loadMatchInputs(cfg)
	if err != nil {
		return err
	}

	matcher := matching.NewSkillMatcher(ontology, matching.DefaultFitWeights())
	match := matcher.MatchJob(resume, jobSkills)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobMatch(match)

	if matchOutput != "" {
		if err := writeJSONOutput(matchOutput, match); err != nil {
			return err
		}
	}
	return nil
}
