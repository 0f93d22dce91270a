package wordlist

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Suggester proposes near matches for a word that failed to resolve.
// The exact similarity algorithm is not load-bearing; anything that
// returns members of words ranked most-similar-first will do.
type Suggester interface {
	Suggest(word string, words []string) []string
}

// Levenshtein ranks candidates by normalized edit-distance similarity.
type Levenshtein struct {
	Max    int     // most suggestions returned
	Cutoff float64 // minimum similarity, in [0, 1]
}

func (s Levenshtein) Suggest(word string, words []string) []string {
	if s.Max <= 0 {
		return nil
	}
	type candidate struct {
		word string
		sim  float64
	}
	var hits []candidate
	for _, w := range words {
		if sim := similarity(word, w); sim >= s.Cutoff {
			hits = append(hits, candidate{word: w, sim: sim})
		}
	}
	// stable sort keeps wordlist order between equal scores
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].sim > hits[j].sim })
	if len(hits) > s.Max {
		hits = hits[:s.Max]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.word
	}
	return out
}

func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
