package render

import (
	"fmt"
	"strings"
)

// Header glyphs for failed outputs and for servers without an icon.
const (
	defaultToolGlyph = "🛠"
	errorGlyph       = "❌"
	overlongGlyph    = "⚠️"
	notFoundGlyph    = "❓"
)

func writeThinking(b *strings.Builder, turn int, text string, withSpacer bool) {
	b.WriteString("<div className=\"thinking-box\">\n")
	if withSpacer {
		fmt.Fprintf(b, "🧐`Agent`<sup>%d</sup>&nbsp;\n\n", turn)
	} else {
		fmt.Fprintf(b, "🧐`Agent`<sup>%d</sup>\n\n", turn)
	}
	b.WriteString(text)
	b.WriteString("\n</div>\n\n")
}

// disclosure is one tool call outcome: a header with a toggle and a
// collapsible body of labeled blocks.
type disclosure struct {
	id       string
	boxClass string
	glyph    string
	name     string
	turn     int
	call     PendingCall
	label    string
	output   string
}

func writeDisclosure(b *strings.Builder, d disclosure) {
	checkbox := d.id + "-checkbox"

	fmt.Fprintf(b, "<div className=\"%s\" id=\"%s\">\n", d.boxClass, d.id)
	b.WriteString("<div className=\"tool-header\">\n")
	fmt.Fprintf(b, "  <div className=\"tool-name\">%s `%s`<sup>%d</sup></div>\n", d.glyph, d.name, d.turn)
	fmt.Fprintf(b, "  <label for=\"%s\" className=\"tool-details-toggle\"></label>\n", checkbox)
	b.WriteString("</div>\n")
	fmt.Fprintf(b, "<input type=\"checkbox\" id=\"%s\" className=\"tool-details-checkbox\" />\n", checkbox)
	b.WriteString("<div className=\"tool-details\">\n")
	if d.call.Kind == KindCode {
		writeBlock(b, "python code", d.call.Code)
	} else {
		writeBlock(b, "json arguments", d.call.Arguments)
	}
	writeBlock(b, "json "+d.label, d.output)
	b.WriteString("</div>\n")
	b.WriteString("</div>\n\n")
}

func writeBlock(b *strings.Builder, info, body string) {
	fmt.Fprintf(b, "```%s\n%s\n```\n\n", info, body)
}
