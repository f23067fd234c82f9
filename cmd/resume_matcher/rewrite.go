package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/rewriting"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Propose skill-aware rewrites for resume bullets",
	Long:  "Matches the resume against the job and prints the rewrite proposals that would be offered for approval, without modifying the resume. Each proposal names the bullet, the proposed text, and the skill it adds.",
	RunE:  runRewrite,
}

var (
	rewriteConfigPath string
	rewriteResume     string
	rewriteJob        string
	rewriteOntology   string
	rewriteUserSkills string
	rewriteAPIKey     string
	rewriteOutput     string
)

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteConfigPath, "config", "c", "", "Path to config JSON file")
	rewriteCmd.Flags().StringVarP(&rewriteResume, "resume", "r", "", "Path to resume JSON file")
	rewriteCmd.Flags().StringVarP(&rewriteJob, "job", "j", "", "Path to job skills JSON file")
	rewriteCmd.Flags().StringVar(&rewriteOntology, "ontology", "", "Path to skill ontology JSON file")
	rewriteCmd.Flags().StringVar(&rewriteUserSkills, "user-skills", "", "Path to user skills allow-list JSON file")
	rewriteCmd.Flags().StringVar(&rewriteAPIKey, "api-key", "", "Gemini API key for LLM phrasing (defaults to GEMINI_API_KEY; omit for deterministic rewrites)")
	rewriteCmd.Flags().StringVarP(&rewriteOutput, "out", "o", "", "Path to output proposals JSON file (optional)")

	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(config.Config{
		Resume:     rewriteResume,
		Job:        rewriteJob,
		Ontology:   rewriteOntology,
		UserSkills: rewriteUserSkills,
		APIKey:     rewriteAPIKey,
	}, rewriteConfigPath)
	if err != nil {
		return err
	}

	resume, jobSkills, ontology, userSkills, err := loadMatchInputs(cfg)
	if err != nil {
		return err
	}

	refiner, cleanup, err := newRefiner(ctx, resolveAPIKey(cfg.APIKey))
	if err != nil {
		return err
	}
	defer cleanup()

	matcher := matching.NewSkillMatcher(ontology, matching.DefaultFitWeights())
	match := matcher.MatchJob(resume, jobSkills)

	rewriter := rewriting.NewRewriter(ontology, userSkills, refiner)
	proposals := rewriter.GenerateVariations(ctx, resume, match)

	if len(proposals) == 0 {
		fmt.Println("No rewrites proposed: the resume already covers the job's skills adequately.")
	}
	for i, proposal := range proposals {
		fmt.Printf("\nProposal %d of %d (%s)\n", i+1, len(proposals), proposal.Ref)
		fmt.Printf("  Trigger:  %s\n", proposal.Trigger)
		fmt.Printf("  Original: %s\n", proposal.OriginalText)
		fmt.Printf("  Proposed: %s\n", proposal.ProposedText)
	}

	if rewriteOutput != "" {
		if err := writeJSONOutput(rewriteOutput, proposals); err != nil {
			return err
		}
	}
	return nil
}

// newRefiner builds the optional LLM phrasing pass. Without an API key the
// rewriter falls back to deterministic proposals, so a missing key is not an
// error. The cleanup func closes the underlying client.
func newRefiner(ctx context.Context, apiKey string) (rewriting.TextRefiner, func(), error) {
	if apiKey == "" {
		return nil, func() {}, nil
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return llm.NewBulletRefiner(client), func() { _ = client.Close() }, nil
}
