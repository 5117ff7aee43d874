// Package resolve maps noisy user-supplied names onto the dataset's
// canonical player, team, and venue names.
package resolve

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the similarity floor for player matching when no
// configured value is supplied.
const DefaultThreshold = 0.6

// Resolver normalizes entity names against a fixed catalog. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	players   []string
	threshold float64
}

// New builds a Resolver over the given player catalog. The slice is
// retained; callers must not mutate it. A non-positive threshold falls back
// to DefaultThreshold.
func New(players []string, threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Resolver{players: players, threshold: threshold}
}

// Player resolves a possibly partial or misspelled name to a catalog entry.
// ok is false when no candidate clears the similarity threshold; callers
// must branch on it before using the result. Ties go to the earlier catalog
// entry, which is implementation-defined order.
func (r *Resolver) Player(input string) (name string, ok bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}

	best, bestScore := "", 0.0
	for _, candidate := range r.players {
		score := similarity(needle, strings.ToLower(candidate))
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < r.threshold {
		return "", false
	}
	return best, true
}

// similarity scores two lower-cased strings in [0, 1]. The base score is a
// length-normalized edit distance over the full strings; a partial name is
// also compared against each token of the candidate so "kohli" still lands
// on "v kohli".
func similarity(input, candidate string) float64 {
	score := ratio(input, candidate)
	for _, tok := range strings.Fields(candidate) {
		if s := ratio(input, tok); s > score {
			score = s
		}
	}
	return score
}

// ratio is (len(a)+len(b)-dist)/(len(a)+len(b)), the edit distance
// normalized so that a partial match against a longer name is not punished
// twice for the missing half.
func ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	s := float64(total-d) / float64(total)
	if s < 0 {
		return 0
	}
	return s
}

// Team maps short codes and historical franchise names to the canonical
// team name. Unknown input passes through trimmed and unchanged: team
// filters degrade to "no rows" rather than blocking the query, a deliberate
// permissive fallback.
func Team(input string) string {
	trimmed := strings.TrimSpace(input)
	if canonical, ok := teamAliases[strings.ToUpper(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// IsKnownTeam reports whether input is a recognized alias or canonical name.
func IsKnownTeam(input string) bool {
	_, ok := teamAliases[strings.ToUpper(strings.TrimSpace(input))]
	return ok
}

// Venue normalizes stadium nicknames and city short forms to the canonical
// venue string via keyword matching. Unknown venues are returned
// title-cased rather than rejected.
func Venue(input string) string {
	needle := strings.ToLower(strings.TrimSpace(input))
	for _, alias := range venueAliases {
		if strings.Contains(needle, alias.keyword) {
			return alias.venue
		}
	}
	return titleCase(strings.TrimSpace(input))
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
