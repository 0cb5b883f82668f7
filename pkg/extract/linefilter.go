package extract

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/testscout/core/pkg/domain"
)

// DefaultFilterPattern matches every supported test indicator: the "test"
// keyword (covering @Test, def test_, testAdd and friends) plus the it(...)
// and describe(...) call forms, which need not mention "test" at all.
const DefaultFilterPattern = `test|@Test|it\(|describe\(`

// maxLineSize bounds single-line reads so minified or generated files cannot
// exhaust memory.
const maxLineSize = 1024 * 1024

// allowedFilterTerms guards FilterLines against arbitrary patterns. A pattern
// is accepted only if it contains one of these terms, mirroring the fixed set
// of test indicators the pipeline is designed around.
var allowedFilterTerms = []string{
	"test",
	"@Test",
	`it\(`,
	`describe\(`,
	"def test_",
	"@pytest",
	"public.*test",
	"private.*test",
	"protected.*test",
}

// FilterLines reads path line by line and returns every line matching pattern,
// in ascending line order (1-indexed). The pattern is applied as a regular
// expression, case-folded when caseInsensitive is set; if it does not compile
// it is applied as a literal substring instead.
//
// A pattern outside the allow-list is a contract error (ErrPatternNotAllowed),
// distinct from "no matches found". Binary content yields zero matches rather
// than an error.
func FilterLines(path, pattern string, caseInsensitive bool) ([]domain.MatchedLine, error) {
	if !filterPatternAllowed(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrPatternNotAllowed, pattern)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("extract: stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("extract: %s is not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("extract: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	match := compileMatcher(pattern, caseInsensitive)

	var matches []domain.MatchedLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		// NUL bytes mark binary content: treat the whole file as zero matches.
		if bytes.IndexByte(line, 0) >= 0 {
			return nil, nil
		}

		if match(string(line)) {
			matches = append(matches, domain.MatchedLine{
				Number: lineNum,
				Text:   string(line),
			})
		}
	}
	if scanner.Err() != nil {
		// Oversized or undecodable content degrades to whatever matched so far.
		return matches, nil
	}

	return matches, nil
}

func compileMatcher(pattern string, caseInsensitive bool) func(string) bool {
	expr := pattern
	if caseInsensitive {
		expr = "(?i)" + expr
	}

	if re, err := regexp.Compile(expr); err == nil {
		return re.MatchString
	}

	if caseInsensitive {
		lowered := strings.ToLower(pattern)
		return func(line string) bool {
			return strings.Contains(strings.ToLower(line), lowered)
		}
	}
	return func(line string) bool {
		return strings.Contains(line, pattern)
	}
}

func filterPatternAllowed(pattern string) bool {
	for _, term := range allowedFilterTerms {
		if strings.Contains(pattern, term) {
			return true
		}
	}
	return false
}
