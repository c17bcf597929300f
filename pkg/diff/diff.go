// Package diff renders line-oriented unified diffs, used to report generated files that
// drifted from what the token registry would produce today.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified compares old and new line by line and returns a unified diff with a single
// hunk. It returns an empty string when the contents are identical. Output longer than
// 10,000 lines is truncated with a marker.
func Unified(old, new []byte, oldLabel, newLabel string) (string, Stats) {
	if bytes.Equal(old, new) {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	oldChars, newChars, lines := dmp.DiffLinesToChars(string(old), string(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lines)

	var (
		body  bytes.Buffer
		stats Stats
	)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			body.WriteString(prefix)
			body.WriteString(line)
			body.WriteByte('\n')
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", oldLabel)
	fmt.Fprintf(&buf, "+++ %s\n", newLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(splitLines(string(old))), len(splitLines(string(new))))
	buf.Write(body.Bytes())

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stats
	}
	return result, stats
}

// splitLines drops the empty element after a trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
