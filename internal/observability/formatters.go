// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the overall, match, and compensation scores.
func (p *Printer) PrintScores(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:       %s\n", formatScore(result.OverallScore)))
	sb.WriteString(fmt.Sprintf("Match:         %s\n", formatScore(result.MatchScore)))
	sb.WriteString(fmt.Sprintf("Compensation:  %s\n", formatScore(result.Compensation.Score)))
	sb.WriteString(fmt.Sprintf("Source:        %s", result.Source))

	p.printBox("ANALYSIS SCORES", sb.String())
}

// PrintCategories outputs the matched, missing, and bonus category sets.
func (p *Printer) PrintCategories(match *types.CategoryMatch) {
	if match == nil || len(match.KeyCategories) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Key categories: %d\n", len(match.KeyCategories)))
	sb.WriteString("\n")

	writeCategoryList(&sb, "Matched", "✓", match.MatchedCategories)
	writeCategoryList(&sb, "Missing", "✗", match.MissingCategories)
	writeCategoryList(&sb, "Bonus", "+", match.BonusCategories)

	p.printBox("CATEGORY MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs the top matched and missing job keywords.
func (p *Printer) PrintKeywords(result *types.AnalysisResult) {
	if result == nil || (len(result.MatchedKeywords) == 0 && len(result.MissingKeywords) == 0) {
		return
	}

	var sb strings.Builder
	writeKeywordLine(&sb, "Matched", result.MatchedKeywords)
	writeKeywordLine(&sb, "Missing", result.MissingKeywords)

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompensation outputs the compensation fit score and its notes.
func (p *Printer) PrintCompensation(comp *types.CompensationFit) {
	if comp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fit score: %s\n", formatScore(comp.Score)))
	for _, note := range comp.Notes {
		if len(note) > 50 {
			note = note[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", note))
	}

	p.printBox("COMPENSATION FIT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs improvement suggestions and ATS notes.
func (p *Printer) PrintSuggestions(result *types.AnalysisResult) {
	if result == nil || (len(result.Suggestions) == 0 && len(result.ATSNotes) == 0) {
		return
	}

	var sb strings.Builder
	if len(result.Suggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			suggestion := result.Suggestions[i]
			if len(suggestion) > 50 {
				suggestion = suggestion[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
		}
	}

	if len(result.ATSNotes) > 0 {
		sb.WriteString("\nATS Notes:\n")
		count := min(len(result.ATSNotes), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.ATSNotes[i]))
		}
		if len(result.ATSNotes) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ATSNotes)-3))
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the complete analysis in reading order.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintScores(result)
	p.PrintCategories(&result.CategoryMatch)
	p.PrintKeywords(result)
	p.PrintCompensation(&result.Compensation)
	p.PrintSuggestions(result)
}

func formatScore(score *int) string {
	if score == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d / 100", *score)
}

func writeCategoryList(sb *strings.Builder, label, marker string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func writeKeywordLine(sb *strings.Builder, label string, keywords []string) {
	if len(keywords) == 0 {
		return
	}
	shown := keywords
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	line := strings.Join(shown, ", ")
	if len(line) > 40 {
		line = line[:37] + "..."
	}
	sb.WriteString(fmt.Sprintf("%s (%d): %s\n", label, len(keywords), line))
}
