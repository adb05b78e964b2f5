package catalog

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// SuggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const SuggestThreshold = 0.7

// Suggest returns up to n candidates that look like id, most similar first.
// Ties keep candidate order.
func Suggest(id string, candidates []string, n int) []string {
	if n <= 0 || id == "" {
		return nil
	}
	type scored struct {
		id    string
		score float32
	}
	needle := strings.ToLower(id)
	var hits []scored
	for _, c := range candidates {
		s, err := edlib.StringsSimilarity(needle, strings.ToLower(c), edlib.JaroWinkler)
		if err != nil || s < SuggestThreshold {
			continue
		}
		hits = append(hits, scored{id: c, score: s})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.id
	}
	return out
}
