// Package domain defines the core types for test extraction results.
package domain

// Language represents a source language family.
// The family selects which heuristic acceptance rules apply during extraction.
type Language string

// Supported language families for test method extraction.
const (
	LanguageJava       Language = "java"
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageTypeScript Language = "typescript"
)
