package textproc

import (
	"regexp"
	"strings"
)

var (
	nonAlnumToSpace = regexp.MustCompile(`[^a-z0-9]+`)
	displaySep      = regexp.MustCompile(`[_/]+`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// NormalizeCategory reduces a category label to its normalized form:
// lowercase, runs of non-alphanumeric characters collapsed to single
// spaces, trimmed. Two labels are the same category iff their normalized
// forms are equal.
func NormalizeCategory(label string) string {
	lowered := strings.ToLower(label)
	collapsed := nonAlnumToSpace.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(collapsed)
}

// FormatCategoryDisplay turns a raw token or label into a presentable
// category: underscore and slash runs become spaces, whitespace collapses,
// and each word is title-cased.
func FormatCategoryDisplay(label string) string {
	spaced := displaySep.ReplaceAllString(label, " ")
	spaced = whitespaceRun.ReplaceAllString(spaced, " ")
	words := strings.Fields(spaced)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
