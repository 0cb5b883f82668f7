package extract

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// DefaultWindowSize is the number of lines read as method body context.
const DefaultWindowSize = 20

// ReadWindow returns up to windowSize lines of path starting at startLine
// (1-indexed), concatenated with their original line breaks. If the window
// runs past end-of-file only the available lines are returned. An unreadable
// file or an out-of-range startLine degrades to the fallback text instead of
// an error, so a candidate always has some context to summarize.
func ReadWindow(path string, startLine, windowSize int, fallback string) string {
	if startLine < 1 || windowSize < 1 {
		return fallback
	}

	f, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer func() { _ = f.Close() }()

	var window strings.Builder
	reader := bufio.NewReader(f)

	lineNum := 0
	collected := 0
	for collected < windowSize {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNum++
			if lineNum >= startLine {
				window.WriteString(line)
				collected++
			}
		}
		if err != nil {
			if err != io.EOF {
				return fallback
			}
			break
		}
	}

	if lineNum < startLine {
		// startLine is beyond end-of-file.
		return fallback
	}

	return window.String()
}
