// Package keywords ranks job-description tokens by frequency and
// partitions them into matched and missing relative to a resume.
package keywords

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/textproc"
)

// maxKeywords caps each of the matched and missing lists.
const maxKeywords = 30

// Stats holds the ranked keyword partition for one job/resume pair.
type Stats struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Extract tokenizes the job text, ranks tokens by descending frequency
// (ties broken by descending token length, then by first-seen order), and
// partitions the ranking by presence in the resume's unique-token set.
// The ordering is fully deterministic for identical inputs.
func Extract(jobText, resumeText string) Stats {
	tokens := textproc.Tokenize(jobText)

	freq := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if _, ok := freq[tok]; !ok {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		freq[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return firstSeen[a] < firstSeen[b]
	})

	resumeTokens := textproc.UniqueTokenSet(resumeText)

	stats := Stats{Matched: []string{}, Missing: []string{}}
	for _, tok := range order {
		if resumeTokens[tok] {
			if len(stats.Matched) < maxKeywords {
				stats.Matched = append(stats.Matched, tok)
			}
		} else {
			if len(stats.Missing) < maxKeywords {
				stats.Missing = append(stats.Missing, tok)
			}
		}
	}
	return stats
}
