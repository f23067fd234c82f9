// Package skills provides skill-name canonicalization and relatedness checks
// backed by an optional skill ontology.
package skills

import "strings"

// relatedTech maps a base technology to technologies commonly used with it.
// Keys and values are lowercase canonical forms.
var relatedTech = map[string][]string{
	"python":     {"numpy", "pandas", "scikit-learn", "tensorflow", "pytorch", "matplotlib", "flask", "django", "fastapi"},
	"javascript": {"typescript", "node.js", "react", "vue", "angular"},
	"typescript": {"javascript", "node.js", "react", "next.js"},
	"java":       {"spring", "maven", "gradle"},
	"go":         {"grpc", "protobuf", "kubernetes", "docker"},
	"node.js":    {"express", "trpc", "graphql"},
	"react":      {"react native", "next.js"},
	"docker":     {"kubernetes", "docker compose"},
	"kubernetes": {"docker", "helm", "terraform"},
	"aws":        {"terraform", "docker", "lambda", "s3"},
	"postgresql": {"sql", "redis"},
}

// Related reports whether two skills are plausibly related: one contains the
// other as a substring, they share an ontology category, or they appear in
// the related-technology table. Both inputs must already be normalized.
func (n *Normalizer) Related(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	if n.SameCategory(a, b) {
		return true
	}
	return relatedInTable(a, b) || relatedInTable(b, a)
}

// RelatedToAny reports whether a skill is plausibly related to any skill in
// the given normalized set.
func (n *Normalizer) RelatedToAny(skill string, others []string) bool {
	for _, other := range others {
		if n.Related(skill, other) {
			return true
		}
	}
	return false
}

func relatedInTable(base, candidate string) bool {
	for _, related := range relatedTech[base] {
		if related == candidate {
			return true
		}
	}
	return false
}
