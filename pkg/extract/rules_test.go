package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testscout/core/pkg/domain"
	"github.com/testscout/core/pkg/extract"
)

func TestExtractCandidates_Java(t *testing.T) {
	lines := []domain.MatchedLine{
		{Number: 12, Text: "public void testAdd() {"},
		{Number: 45, Text: "// test helper, not a method"},
		{Number: 60, Text: "@Test"},
		{Number: 61, Text: "void addsTwoNumbers() {"},
	}

	candidates := extract.ExtractCandidates(lines, domain.LanguageJava, "Calc.java")

	require.Len(t, candidates, 2)
	assert.Equal(t, 12, candidates[0].Line.Number)
	assert.Equal(t, 60, candidates[1].Line.Number)
	assert.Equal(t, "Calc.java", candidates[0].FilePath)
}

func TestExtractCandidates_Python(t *testing.T) {
	lines := []domain.MatchedLine{
		{Number: 3, Text: "def test_login():"},
		{Number: 9, Text: "def helper():"},
		{Number: 15, Text: "@pytest.mark.slow"},
	}

	candidates := extract.ExtractCandidates(lines, domain.LanguagePython, "test_auth.py")

	require.Len(t, candidates, 2)
	assert.Equal(t, 3, candidates[0].Line.Number)
	assert.Equal(t, 15, candidates[1].Line.Number)
}

func TestExtractCandidates_JavaScript(t *testing.T) {
	lines := []domain.MatchedLine{
		{Number: 2, Text: "describe('UserService', () => {"},
		{Number: 3, Text: "  it('should create user', () => {});"},
		{Number: 8, Text: "  const tester = makeTester();"},
		{Number: 12, Text: "test(`deletes ${kind}`, async () => {"},
	}

	for _, lang := range []domain.Language{domain.LanguageJavaScript, domain.LanguageTypeScript} {
		candidates := extract.ExtractCandidates(lines, lang, "user.test.ts")

		require.Len(t, candidates, 3, "language %s", lang)
		assert.Equal(t, 2, candidates[0].Line.Number)
		assert.Equal(t, 3, candidates[1].Line.Number)
		assert.Equal(t, 12, candidates[2].Line.Number)
	}
}

func TestExtractCandidates_UnknownLanguage(t *testing.T) {
	lines := []domain.MatchedLine{{Number: 1, Text: "public void testAdd() {"}}

	candidates := extract.ExtractCandidates(lines, domain.Language("cobol"), "x")
	assert.Empty(t, candidates)
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name string
		line string
		lang domain.Language
		want string
	}{
		{"java test prefix", "public void testAdd() {", domain.LanguageJava, "testAdd"},
		{"java case-folded prefix", "protected boolean TestConnection() {", domain.LanguageJava, "TestConnection"},
		{"java annotation with declaration", "@Test public void addsTwoNumbers() {", domain.LanguageJava, "addsTwoNumbers"},
		{"java bare annotation", "@Test", domain.LanguageJava, domain.UnknownName},
		{"python def", "def test_login():", domain.LanguagePython, "test_login"},
		{"python decorator", "@pytest.mark.slow", domain.LanguagePython, domain.UnknownName},
		{"js it title", "it('should create user', () => {});", domain.LanguageJavaScript, "should create user"},
		{"js describe title", `describe("Auth", () => {`, domain.LanguageJavaScript, "Auth"},
		{"ts test backtick title", "test(`renders`, () => {})", domain.LanguageTypeScript, "renders"},
		{"js call without title", "test(makeName(), () => {})", domain.LanguageJavaScript, domain.UnknownName},
		{"unknown language", "public void testAdd() {", domain.Language("cobol"), domain.UnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.DeriveName(tt.line, tt.lang))
		})
	}
}

func TestDeriveName_Deterministic(t *testing.T) {
	line := "public void testRetryPolicy() {"

	first := extract.DeriveName(line, domain.LanguageJava)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, extract.DeriveName(line, domain.LanguageJava))
	}
}

func TestLanguageForPath(t *testing.T) {
	tests := []struct {
		path string
		want domain.Language
		ok   bool
	}{
		{"a/b/CalcTest.java", domain.LanguageJava, true},
		{"test_auth.py", domain.LanguagePython, true},
		{"user.test.js", domain.LanguageJavaScript, true},
		{"App.spec.JSX", domain.LanguageJavaScript, true},
		{"user.test.ts", domain.LanguageTypeScript, true},
		{"Widget.tsx", domain.LanguageTypeScript, true},
		{"main.go", "", false},
	}

	for _, tt := range tests {
		lang, ok := extract.LanguageForPath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, lang, tt.path)
	}
}
