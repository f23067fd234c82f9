// Package rewriting proposes constrained rewrites of resume bullets that
// under-represent skills a job asks for.
package rewriting

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Rewriter proposes textual rewrites for resume bullets. It is stateless
// across calls aside from the immutable allow-list and ontology fixed at
// construction. When a UserSkills allow-list is supplied, any proposal that
// would introduce a skill outside it is suppressed, never substituted with a
// placeholder.
type Rewriter struct {
	ontology   *types.SkillOntology
	normalizer *skills.Normalizer
	userSkills *types.UserSkills
	refiner    TextRefiner
}

// TextRefiner optionally improves the phrasing of a proposed bullet.
// Implementations must not be trusted: refined output is re-validated
// against the same constraints as the deterministic text.
type TextRefiner interface {
	RefineBullet(ctx context.Context, originalText, skill string) (string, error)
}

// NewRewriter creates a rewriter. Both ontology and userSkills may be nil;
// a nil userSkills disables the allow-list (no fabrication filtering).
// refiner may be nil for fully deterministic proposals.
func NewRewriter(ontology *types.SkillOntology, userSkills *types.UserSkills, refiner TextRefiner) *Rewriter {
	return &Rewriter{
		ontology:   ontology,
		normalizer: skills.NewNormalizer(ontology),
		userSkills: userSkills,
		refiner:    refiner,
	}
}

// targetSkill pairs a normalized comparison form with the display spelling
// taken from the job posting.
type targetSkill struct {
	normalized string
	display    string
	required   bool
}

// GenerateVariations scans every bullet in the resume and proposes a rewrite
// wherever a bullet fails to mention a plausibly related skill from the
// match's matching or required-missing sets. Zero proposals means the resume
// already covers the job's skills adequately; that is success, not failure.
func (rw *Rewriter) GenerateVariations(ctx context.Context, resume *types.Resume, match *types.JobMatch) []types.RewriteProposal {
	targets := rw.collectTargets(match)
	if len(targets) == 0 {
		return nil
	}

	var proposals []types.RewriteProposal

	for i := range resume.Experience {
		exp := &resume.Experience[i]
		for j := range exp.Bullets {
			ref := types.BulletRef{
				Section:     types.SectionExperience,
				ItemIndex:   i,
				BulletIndex: j,
				ItemName:    exp.Organization,
			}
			if p := rw.proposeForBullet(ctx, ref, &exp.Bullets[j], nil, targets); p != nil {
				proposals = append(proposals, *p)
			}
		}
	}

	for i := range resume.Projects {
		project := &resume.Projects[i]
		for j := range project.Bullets {
			ref := types.BulletRef{
				Section:     types.SectionProjects,
				ItemIndex:   i,
				BulletIndex: j,
				ItemName:    project.Name,
			}
			if p := rw.proposeForBullet(ctx, ref, &project.Bullets[j], project.TechStack, targets); p != nil {
				proposals = append(proposals, *p)
			}
		}
	}

	return proposals
}

// collectTargets gathers the skills worth emphasizing: matched skills first,
// then required gaps, deduplicated on normalized form. The allow-list filter
// applies here, so disallowed skills never become targets.
func (rw *Rewriter) collectTargets(match *types.JobMatch) []targetSkill {
	var targets []targetSkill
	seen := make(map[string]bool)

	add := func(names []string, required bool) {
		for _, name := range names {
			normalized := rw.normalizer.Normalize(name)
			if normalized == "" || seen[normalized] {
				continue
			}
			if rw.userSkills != nil && !rw.userSkills.Contains(name) {
				continue
			}
			seen[normalized] = true
			targets = append(targets, targetSkill{normalized: normalized, display: strings.TrimSpace(name), required: required})
		}
	}

	add(match.MatchingSkills, false)
	add(match.SkillGaps.RequiredMissing, true)

	return targets
}

// proposeForBullet returns at most one proposal for a bullet: the first
// target skill the bullet does not yet mention but which plausibly relates
// to the bullet's existing skills (and, for project bullets, the project's
// tech stack).
func (rw *Rewriter) proposeForBullet(ctx context.Context, ref types.BulletRef, bullet *types.Bullet, techStack []string, targets []targetSkill) *types.RewriteProposal {
	context := rw.normalizer.NormalizeAll(append(append([]string{}, bullet.Skills...), techStack...))
	if len(context) == 0 {
		// Nothing to relate a new skill to; rewriting would be fabrication
		// by association.
		return nil
	}

	textLower := strings.ToLower(bullet.Text)
	bulletSkills := rw.normalizer.NormalizeSet(bullet.Skills)

	for _, target := range targets {
		if bulletSkills[target.normalized] {
			continue
		}
		if strings.Contains(textLower, target.normalized) || strings.Contains(textLower, strings.ToLower(target.display)) {
			continue
		}
		if !rw.normalizer.RelatedToAny(target.normalized, context) {
			continue
		}

		proposed := rw.proposeText(ctx, bullet.Text, target.display)
		if proposed == "" {
			continue
		}

		trigger := fmt.Sprintf("Job lists %s; this bullet's work relates to it but does not mention it", target.display)
		if target.required {
			trigger = fmt.Sprintf("Required skill %s is missing from the resume", target.display)
		}

		return &types.RewriteProposal{
			Ref:          ref,
			OriginalText: bullet.Text,
			ProposedText: proposed,
			SkillsAdded:  []string{target.display},
			Trigger:      trigger,
		}
	}

	return nil
}

// proposeText builds the rewritten bullet text. The deterministic form is a
// word-level insertion that leaves the bullet's claim intact; a configured
// refiner may rephrase it, but its output is re-validated and discarded on
// any violation. Returns "" when no acceptable text fits the length limit.
func (rw *Rewriter) proposeText(ctx context.Context, original, skill string) string {
	deterministic := insertSkill(original, skill)
	if len(deterministic) > types.MaxBulletLength {
		return ""
	}

	if rw.refiner == nil {
		return deterministic
	}

	refined, err := rw.refiner.RefineBullet(ctx, original, skill)
	if err != nil || !rw.refinedTextAcceptable(refined, skill) {
		return deterministic
	}
	return strings.TrimSpace(refined)
}

// refinedTextAcceptable re-validates refiner output: it must fit the length
// limit, actually mention the target skill, and must not smuggle in an
// ontology-known skill outside the allow-list.
func (rw *Rewriter) refinedTextAcceptable(refined, skill string) bool {
	refined = strings.TrimSpace(refined)
	if refined == "" || len(refined) > types.MaxBulletLength {
		return false
	}
	if !strings.Contains(strings.ToLower(refined), strings.ToLower(skill)) {
		return false
	}
	if rw.userSkills != nil && rw.ontology != nil {
		textLower := strings.ToLower(refined)
		for _, known := range rw.ontology.CanonicalSkills {
			if strings.Contains(textLower, strings.ToLower(known.Name)) && !rw.userSkills.Contains(known.Name) {
				return false
			}
		}
	}
	return true
}

// insertSkill appends the skill to the bullet with a word-level insertion,
// preserving trailing punctuation.
func insertSkill(original, skill string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(original), " ")
	suffix := ""
	if strings.HasSuffix(trimmed, ".") {
		trimmed = strings.TrimSuffix(trimmed, ".")
		suffix = "."
	}
	return fmt.Sprintf("%s using %s%s", trimmed, skill, suffix)
}

// SkillsMentioned returns the subset of candidate skills that appear in the
// text, case-insensitively. Used by the approval workflow to re-validate
// operator-edited text instead of trusting a proposal's added-skills list.
func SkillsMentioned(text string, candidates []string) []string {
	textLower := strings.ToLower(text)
	var mentioned []string
	for _, candidate := range candidates {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "" {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(trimmed)) {
			mentioned = append(mentioned, trimmed)
		}
	}
	return mentioned
}
