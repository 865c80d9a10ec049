package diffview

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/term"
)

// Color constants for better readability
const (
	RedColor             = "\x1b[31m"
	GreenColor           = "\x1b[32m"
	YellowColor          = "\x1b[33m"
	BoldStyle            = "\x1b[1m"
	ResetColor           = "\x1b[0m"
	NumberOfContextLines = 3 // Number of context lines to show around changes
)

type lineOp struct {
	op   diffmatchpatch.Operation
	text string
}

// ColorEnabled reports whether ANSI colors should be written to f.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// lineDiff computes a line-granular diff between two texts.
func lineDiff(before, after string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var ops []lineOp
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			ops = append(ops, lineOp{op: d.Type, text: line})
		}
	}
	return ops
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// GetDiff renders a unified-style diff of a page with NumberOfContextLines of
// context around each change. It returns "" when the texts are identical.
func GetDiff(filename, before, after string, color bool) string {
	if before == after {
		return ""
	}
	ops := lineDiff(before, after)

	paint := func(c, s string) string {
		if !color {
			return s
		}
		return c + s + ResetColor
	}

	keep := make([]bool, len(ops))
	for i, op := range ops {
		if op.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := i - NumberOfContextLines; j <= i+NumberOfContextLines; j++ {
			if j >= 0 && j < len(ops) {
				keep[j] = true
			}
		}
	}

	var result strings.Builder
	result.WriteString(getStats(ops, filename, paint))

	skipped := false
	for i, op := range ops {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			result.WriteString("  ...\n")
			skipped = false
		}
		switch op.op {
		case diffmatchpatch.DiffDelete:
			result.WriteString(paint(RedColor, "- "+op.text) + "\n")
		case diffmatchpatch.DiffInsert:
			result.WriteString(paint(GreenColor, "+ "+op.text) + "\n")
		default:
			result.WriteString("  " + op.text + "\n")
		}
	}
	return result.String()
}

// PrintDiff writes the diff of a page to w, or a note when nothing changed.
func PrintDiff(w io.Writer, filename, before, after string, color bool) {
	diff := GetDiff(filename, before, after, color)
	if diff == "" {
		fmt.Fprintf(w, "%s: no changes detected.\n", filename)
		return
	}
	fmt.Fprint(w, diff)
}

func getStats(ops []lineOp, filename string, paint func(c, s string) string) string {
	var result strings.Builder
	additions, deletions := calculateChanges(ops)
	result.WriteString(paint(BoldStyle+YellowColor, filename) + " ")
	if additions > 0 {
		result.WriteString(paint(BoldStyle+GreenColor, fmt.Sprintf("+++%d", additions)) + " ")
	}
	if deletions > 0 {
		result.WriteString(paint(BoldStyle+RedColor, fmt.Sprintf("---%d", deletions)))
	}
	result.WriteString("\n")
	return result.String()
}

// calculateChanges counts added and removed lines
func calculateChanges(ops []lineOp) (additions, deletions int) {
	for _, op := range ops {
		switch op.op {
		case diffmatchpatch.DiffInsert:
			additions++
		case diffmatchpatch.DiffDelete:
			deletions++
		}
	}
	return
}
