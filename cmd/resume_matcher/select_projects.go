package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/library"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/selection"
)

var selectProjectsCmd = &cobra.Command{
	Use:   "select-projects",
	Short: "Select the library projects most relevant to a job",
	Long:  "Scores every project in the project library against a job's skills and returns the top projects above the relevance threshold, sorted by score.",
	RunE:  runSelectProjects,
}

var (
	selectConfigPath  string
	selectJob         string
	selectOntology    string
	selectLibraryPath string
	selectMax         int
	selectMinScore    float64
	selectOutput      string
)

func init() {
	selectProjectsCmd.Flags().StringVarP(&selectConfigPath, "config", "c", "", "Path to config JSON file")
	selectProjectsCmd.Flags().StringVarP(&selectJob, "job", "j", "", "Path to job skills JSON file")
	selectProjectsCmd.Flags().StringVar(&selectOntology, "ontology", "", "Path to skill ontology JSON file")
	selectProjectsCmd.Flags().StringVarP(&selectLibraryPath, "library", "l", "", "Path to project library JSON file")
	selectProjectsCmd.Flags().IntVar(&selectMax, "max-projects", 0, "Maximum number of projects to select")
	selectProjectsCmd.Flags().Float64Var(&selectMinScore, "min-score", 0, "Minimum relevance score a project must reach")
	selectProjectsCmd.Flags().StringVarP(&selectOutput, "out", "o", "", "Path to output selected projects JSON file (optional)")

	rootCmd.AddCommand(selectProjectsCmd)
}

func runSelectProjects(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Job:             selectJob,
		Ontology:        selectOntology,
		ProjectLibrary:  selectLibraryPath,
		MaxProjects:     selectMax,
		MinProjectScore: selectMinScore,
	}, selectConfigPath)
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("job skills path is required (set --job or the config file)")
	}
	if cfg.ProjectLibrary == "" {
		return fmt.Errorf("project library path is required (set --library or the config file)")
	}

	jobSkills, err := ingestion.LoadJobSkills(cfg.Job)
	if err != nil {
		return err
	}
	ontology, err := ingestion.LoadOntology(cfg.Ontology)
	if err != nil {
		return err
	}
	lib, err := library.Load(cfg.ProjectLibrary)
	if err != nil {
		return err
	}

	selector := selection.NewProjectSelector(lib, ontology)
	selected, err := selector.SelectProjects(jobSkills, cfg.MaxProjects, cfg.MinProjectScore)
	if err != nil {
		return err
	}

	if len(selected) == 0 {
		fmt.Println("No projects met the relevance threshold.")
	} else {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSelectedProjects(selected)
	}

	if selectOutput != "" {
		if err := writeJSONOutput(selectOutput, selected); err != nil {
			return err
		}
	}
	return nil
}
