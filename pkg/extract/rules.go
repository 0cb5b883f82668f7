package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/testscout/core/pkg/domain"
)

// The extraction rules are heuristic by design: a line-level regex cannot see
// past unconventional formatting and will occasionally accept a comment that
// looks like a declaration. This precision/recall trade-off is accepted in
// exchange for not carrying a full grammar parser.

var (
	javaMethodPattern   = regexp.MustCompile(`(?i)(public|private|protected).*test\w+\s*\(`)
	javaNamePattern     = regexp.MustCompile(`(public|private|protected).*?(\w+)\s*\(`)
	javaTestIdentifier  = regexp.MustCompile(`(?i)(test\w+)`)
	pythonDefPattern    = regexp.MustCompile(`def\s+test_\w+\s*\(`)
	pythonNamePattern   = regexp.MustCompile(`def\s+(test_\w+)`)
	jsCallPattern       = regexp.MustCompile(`\b(it|test|describe)\s*\(`)
	jsCallTitlePattern  = regexp.MustCompile("\\b(?:it|test|describe)\\s*\\(\\s*[`'\"]([^`'\"]+)[`'\"]")
	javaAnnotationToken = "@Test"
	pytestMarkerToken   = "@pytest"
)

// ruleSet holds the acceptance and naming heuristics for one language family.
type ruleSet struct {
	accept func(line string) bool
	name   func(line string) string
}

var ruleSets = map[domain.Language]ruleSet{
	domain.LanguageJava: {
		accept: acceptJava,
		name:   deriveJavaName,
	},
	domain.LanguagePython: {
		accept: acceptPython,
		name:   derivePythonName,
	},
	domain.LanguageJavaScript: {
		accept: acceptJS,
		name:   deriveJSName,
	},
	domain.LanguageTypeScript: {
		accept: acceptJS,
		name:   deriveJSName,
	},
}

// ExtractCandidates applies the language family's acceptance rule over the
// filtered lines and returns the lines that look like genuine test method
// declarations. Selection is deterministic: identical input always yields
// identical candidates.
func ExtractCandidates(lines []domain.MatchedLine, lang domain.Language, filePath string) []domain.Candidate {
	rules, ok := ruleSets[lang]
	if !ok {
		return nil
	}

	var candidates []domain.Candidate
	for _, line := range lines {
		if rules.accept(line.Text) {
			candidates = append(candidates, domain.Candidate{
				FilePath: filePath,
				Line:     line,
			})
		}
	}
	return candidates
}

// DeriveName extracts the test method name from an accepted line.
// When no identifier can be derived it returns domain.UnknownName.
func DeriveName(line string, lang domain.Language) string {
	rules, ok := ruleSets[lang]
	if !ok {
		return domain.UnknownName
	}

	if name := rules.name(line); name != "" {
		return name
	}
	return domain.UnknownName
}

// LanguageForPath maps a file extension to its language family.
func LanguageForPath(path string) (domain.Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java":
		return domain.LanguageJava, true
	case ".py":
		return domain.LanguagePython, true
	case ".js", ".jsx":
		return domain.LanguageJavaScript, true
	case ".ts", ".tsx":
		return domain.LanguageTypeScript, true
	default:
		return "", false
	}
}

func acceptJava(line string) bool {
	return javaMethodPattern.MatchString(line) || strings.Contains(line, javaAnnotationToken)
}

// deriveJavaName prefers the identifier before the parameter list on
// annotation-style lines, then falls back to the test-prefixed identifier.
// A bare "@Test" annotation line carries no identifier and yields the sentinel.
func deriveJavaName(line string) string {
	if strings.Contains(line, javaAnnotationToken) {
		if m := javaNamePattern.FindStringSubmatch(line); m != nil {
			return m[2]
		}
		return ""
	}
	if m := javaTestIdentifier.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

func acceptPython(line string) bool {
	return pythonDefPattern.MatchString(line) || strings.Contains(line, pytestMarkerToken)
}

func derivePythonName(line string) string {
	if m := pythonNamePattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

func acceptJS(line string) bool {
	return jsCallPattern.MatchString(line)
}

// deriveJSName takes the quoted title of the it/test/describe call.
func deriveJSName(line string) string {
	if m := jsCallTitlePattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}
