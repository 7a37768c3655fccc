package progress

import (
	"regexp"
	"sort"
	"strings"
)

const (
	similarityThreshold = 0.6
	maxMatches          = 5
)

var (
	fillerWordsRegex = regexp.MustCompile(`\b(the|with|using|on|at|for)\b`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)

	// "bench press" is listed first so an already expanded name is left alone
	abbreviationsRegex = regexp.MustCompile(`\b(bench press|bench|bp|ohp|dl|sqt|pullup|chinup)\b`)
	abbreviations      = map[string]string{
		"bench press": "bench press",
		"bench":       "bench press",
		"bp":          "bench press",
		"ohp":         "overhead press",
		"dl":          "deadlift",
		"sqt":         "squat",
		"pullup":      "pull-up",
		"chinup":      "chin-up",
	}
)

// Normalize lowercases an exercise name, drops filler words and expands common abbreviations.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	normalized := strings.ToLower(name)
	normalized = fillerWordsRegex.ReplaceAllString(normalized, "")
	normalized = collapseWhitespace(normalized)
	normalized = abbreviationsRegex.ReplaceAllStringFunc(normalized, func(word string) string {
		return abbreviations[word]
	})
	return collapseWhitespace(normalized)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Similarity scores two normalized names in [0, 1]. It is symmetric.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}
	return jaccard(strings.Fields(a), strings.Fields(b))
}

func jaccard(words1, words2 []string) float64 {
	set1 := make(map[string]struct{}, len(words1))
	for _, w := range words1 {
		set1[w] = struct{}{}
	}
	union := make(map[string]struct{}, len(words1)+len(words2))
	for w := range set1 {
		union[w] = struct{}{}
	}

	intersection := 0
	seen := make(map[string]struct{}, len(words2))
	for _, w := range words2 {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		union[w] = struct{}{}
		if _, ok := set1[w]; ok {
			intersection++
		}
	}

	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

// Rank scores candidates against the query and returns the best ones, most similar first.
// Candidates at or below the threshold are dropped; equal scores keep the candidate order.
func Rank(query string, candidates []string) []NameMatch {
	normalizedQuery := Normalize(query)

	var matches []NameMatch
	for _, c := range candidates {
		normalized := Normalize(c)
		similarity := Similarity(normalizedQuery, normalized)
		if similarity <= similarityThreshold {
			continue
		}
		matches = append(matches, NameMatch{
			Original:   c,
			Normalized: normalized,
			Similarity: similarity,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}

	return matches
}
