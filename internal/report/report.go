// Package report renders extraction results for the terminal and persists
// them as structured JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/testscout/core/pkg/domain"
	"github.com/testscout/core/pkg/extract"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// Render produces the sectioned terminal report for an extraction run.
func Render(res *extract.ExtractResult) string {
	var b strings.Builder
	r := res.Result

	rule := mutedStyle.Render(strings.Repeat("=", 60))
	b.WriteString(rule + "\n")
	b.WriteString(headerStyle.Render("TEST ANALYSIS RESULTS") + "\n")
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Repository:"), r.RepositoryPath)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Total Files Analyzed:"), r.TotalFilesAnalyzed)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Total Tests Found:"), r.TotalTestsFound)
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Summary:"), r.Summary)

	for _, fa := range r.FileAnalyses {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("FILE:"), fa.FilePath)
		fmt.Fprintf(&b, "Tests in file: %d\n", fa.TotalTests)
		for _, m := range fa.TestMethods {
			fmt.Fprintf(&b, "  Method: %s\n", m.Name)
			fmt.Fprintf(&b, "  Line: %d\n", m.LineNumber)
			fmt.Fprintf(&b, "  Purpose: %s\n", m.Purpose)
			b.WriteString("  " + mutedStyle.Render(strings.Repeat("-", 50)) + "\n")
		}
		b.WriteString("\n")
	}

	for _, extractErr := range res.Errors {
		b.WriteString(warnStyle.Render("Warning: "+extractErr.Error()) + "\n")
	}

	return b.String()
}

// OutputFileName derives the deterministic JSON artifact name for a
// repository root: path separators and spaces become underscores.
func OutputFileName(root string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(root)
	return fmt.Sprintf("test_analysis_%s.json", sanitized)
}

// WriteJSON persists the result into dir using the deterministic artifact
// name and returns the written path.
func WriteJSON(dir string, result *domain.ExtractionResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: encode result: %w", err)
	}

	path := filepath.Join(dir, OutputFileName(result.RepositoryPath))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}

	return path, nil
}
