// Package skills provides skill-name canonicalization and relatedness checks
// backed by an optional skill ontology.
package skills

// Jaccard computes intersection-over-union of two membership sets.
// Two empty sets have nothing distinguishing them and score 1.0.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	intersection := 0
	for member := range a {
		if b[member] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}
