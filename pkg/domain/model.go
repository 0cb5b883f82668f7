package domain

// UnknownName is the sentinel method name used when no identifier can be
// derived from a matched line. It is a defined fallback, not an error.
const UnknownName = "Unknown"

// MatchedLine is a single source line that matched the keyword filter.
type MatchedLine struct {
	// Number is the 1-indexed line number within the file.
	Number int `json:"number"`
	// Text is the raw line text without the trailing newline.
	Text string `json:"text"`
}

// Candidate is a matched line accepted by a language rule-set as a probable
// test method declaration, pending name derivation and summarization.
type Candidate struct {
	// FilePath is the file the line was read from.
	FilePath string `json:"file_path"`
	// Line is the matched line that passed the acceptance rule.
	Line MatchedLine `json:"line"`
}

// TestMethod is a fully analyzed test method.
type TestMethod struct {
	// FilePath is the file containing the method.
	FilePath string `json:"file_path"`
	// LineNumber is where the method is declared.
	LineNumber int `json:"line_number"`
	// Name is the derived method name, or UnknownName.
	Name string `json:"name"`
	// Purpose describes what the method tests. Never empty: summarizer
	// failures leave a diagnostic string here instead of dropping the method.
	Purpose string `json:"purpose"`
}

// FileAnalysis groups the analyzed test methods of a single file.
type FileAnalysis struct {
	// FilePath is the analyzed file.
	FilePath string `json:"file_path"`
	// TestMethods contains the analyzed methods in line order.
	TestMethods []TestMethod `json:"test_methods"`
	// TotalTests equals len(TestMethods).
	TotalTests int `json:"total_tests"`
}

// ExtractionResult is the complete per-repository analysis.
type ExtractionResult struct {
	// RepositoryPath is the root directory that was scanned.
	RepositoryPath string `json:"repository_path"`
	// TotalFilesAnalyzed counts every file that was scanned, including files
	// with zero matching tests (those are omitted from FileAnalyses).
	TotalFilesAnalyzed int `json:"total_files_analyzed"`
	// TotalTestsFound equals the sum of TotalTests across FileAnalyses.
	TotalTestsFound int `json:"total_tests_found"`
	// FileAnalyses contains one entry per file with at least one test method.
	FileAnalyses []FileAnalysis `json:"file_analyses"`
	// Summary is a human-readable description of the counts. Always non-empty.
	Summary string `json:"summary"`
}

// CountTests returns the total number of test methods across all file analyses.
func (r ExtractionResult) CountTests() int {
	count := 0
	for _, fa := range r.FileAnalyses {
		count += fa.TotalTests
	}
	return count
}
