package render

import "strings"

// EscapeMode selects which structurally significant characters to neutralize.
type EscapeMode uint8

const (
	// EscapeBraces backslash-escapes { and } so MDX does not evaluate them.
	EscapeBraces EscapeMode = 1 << iota
	// EscapeAngles turns < and > into [ and ] so text cannot open tags.
	EscapeAngles
)

var escapeTable = []struct {
	mode     EscapeMode
	old, new string
}{
	{EscapeBraces, "{", `\{`},
	{EscapeBraces, "}", `\}`},
	{EscapeAngles, "<", "["},
	{EscapeAngles, ">", "]"},
}

// Escape neutralizes the characters selected by mode.
func Escape(text string, mode EscapeMode) string {
	var pairs []string
	for _, e := range escapeTable {
		if mode&e.mode != 0 {
			pairs = append(pairs, e.old, e.new)
		}
	}
	if len(pairs) == 0 {
		return text
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
