package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// BulletRefiner rewrites bullet text with an LLM so an inserted skill reads
// naturally. The rewriter re-validates every refinement and falls back to its
// deterministic phrasing, so a bad response degrades quality but never
// correctness.
type BulletRefiner struct {
	client Client
	tier   ModelTier
}

// NewBulletRefiner creates a refiner backed by the given client. Rewriting is
// a complex-reasoning task, so it runs on the advanced tier.
func NewBulletRefiner(client Client) *BulletRefiner {
	return &BulletRefiner{
		client: client,
		tier:   TierAdvanced,
	}
}

// RefineBullet asks the model for a natural-sounding rewrite of originalText
// that mentions skill. Returns the cleaned single-line response.
func (r *BulletRefiner) RefineBullet(ctx context.Context, originalText, skill string) (string, error) {
	prompt := buildRefinePrompt(originalText, skill)

	response, err := r.client.GenerateContent(ctx, prompt, r.tier)
	if err != nil {
		return "", fmt.Errorf("failed to refine bullet: %w", err)
	}

	return cleanBulletResponse(response), nil
}

func buildRefinePrompt(originalText, skill string) string {
	var sb strings.Builder
	sb.WriteString("Rewrite the following resume bullet point so that it naturally mentions the skill \"")
	sb.WriteString(skill)
	sb.WriteString("\".\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString(fmt.Sprintf("- Maximum %d characters.\n", types.MaxBulletLength))
	sb.WriteString("- Keep every fact and metric from the original; do not invent accomplishments.\n")
	sb.WriteString("- Do not mention any technology other than those already in the bullet plus the given skill.\n")
	sb.WriteString("- Return ONLY the rewritten bullet text, no quotes, no explanation.\n\n")
	sb.WriteString("Original: ")
	sb.WriteString(originalText)
	return sb.String()
}

// cleanBulletResponse strips the wrapping LLMs tend to add: whitespace,
// surrounding quotes, and a leading bullet glyph.
func cleanBulletResponse(text string) string {
	text = strings.TrimSpace(text)
	// Keep only the first line if the model returned several.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	text = strings.Trim(text, `"`)
	text = strings.TrimPrefix(text, "- ")
	text = strings.TrimPrefix(text, "• ")
	return strings.TrimSpace(text)
}
