// Package textproc provides tokenization and normalization of resume and
// job-description text. All category identity comparisons throughout the
// analyzer go through NormalizeCategory so that set operations agree
// bit-for-bit across call sites.
package textproc

import (
	"regexp"
	"strings"
)

// minTokenLength is the exclusive lower bound on token length; tokens of
// this length or shorter are discarded.
const minTokenLength = 2

// termRewrites maps multi-word or punctuated technology names to a single
// alphanumeric token so generic splitting does not destroy them. Applied
// case-insensitively before splitting.
var termRewrites = []struct{ from, to string }{
	{"c++", "cpp"},
	{"c#", "csharp"},
	{"f#", "fsharp"},
	{"node.js", "nodejs"},
	{"next.js", "nextjs"},
	{"vue.js", "vuejs"},
	{"react.js", "reactjs"},
	{".net", "dotnet"},
	{"objective-c", "objectivec"},
	{"ci/cd", "cicd"},
	{"scikit-learn", "scikitlearn"},
}

// stopwords holds generic resume and job-ad filler that carries no skill
// signal. The set is a design parameter, not a contract: it must exclude
// filler so real skill terms survive, but the exact membership may evolve.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"your": true, "our": true, "are": true, "will": true, "have": true,
	"has": true, "this": true, "that": true, "from": true, "into": true,
	"about": true, "their": true, "they": true, "them": true, "who": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"experience": true, "experienced": true, "skills": true, "skill": true,
	"team": true, "teams": true, "responsible": true, "responsibilities": true,
	"requirements": true, "required": true, "require": true, "preferred": true,
	"work": true, "working": true, "worked": true, "years": true, "year": true,
	"strong": true, "ability": true, "able": true, "knowledge": true,
	"understanding": true, "excellent": true, "good": true, "great": true,
	"role": true, "job": true, "candidate": true, "candidates": true,
	"must": true, "should": true, "including": true, "include": true,
	"plus": true, "etc": true, "such": true, "well": true, "also": true,
	"other": true, "more": true, "related": true, "using": true, "used": true,
	"use": true, "within": true, "across": true, "both": true, "new": true,
	"looking": true, "join": true, "company": true, "position": true,
	"opportunity": true, "opportunities": true, "environment": true,
	"benefits": true, "salary": true, "apply": true, "application": true,
}

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenize turns raw text into the canonical stream of significant words:
// multi-word technology terms are collapsed first, then the text is
// lowercased, split on runs of non-alphanumeric characters, and filtered
// for length and stopwords. Pure function of its input.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	for _, rw := range termRewrites {
		lowered = strings.ReplaceAll(lowered, rw.from, rw.to)
	}

	raw := nonAlnumRun.Split(lowered, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) <= minTokenLength {
			continue
		}
		if stopwords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// UniqueTokens returns the de-duplicated token stream for text, preserving
// first-occurrence order.
func UniqueTokens(text string) []string {
	tokens := Tokenize(text)
	seen := make(map[string]bool, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		unique = append(unique, tok)
	}
	return unique
}

// UniqueTokenSet returns the unique tokens of text as a membership set.
func UniqueTokenSet(text string) map[string]bool {
	tokens := Tokenize(text)
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}
