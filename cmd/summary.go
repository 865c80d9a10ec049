package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/mcpbench/docgen/pkg/assemble"
	"github.com/mcpbench/docgen/pkg/utils"
)

const maxErrorWidth = 160

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func pageStatus(p *assemble.Page) string {
	switch {
	case len(p.Failures) > 0:
		return fmt.Sprintf("%d skipped", len(p.Failures))
	case p.Detailed:
		return "rendered"
	default:
		return "base only"
	}
}

// errorLine prefixes err with its kind when it has one.
func errorLine(err error) string {
	for _, kind := range []error{utils.ErrFileSystem, utils.ErrValidation, utils.ErrConfig} {
		if errors.Is(err, kind) {
			return fmt.Sprintf("[%v] %v", kind, err)
		}
	}
	return err.Error()
}

// renderSummary formats the batch report as a table followed by any errors.
// A width of 0 leaves the table at its natural width.
func renderSummary(report *assemble.Report, width int) string {
	rows := make([][]string, 0, len(report.Pages))
	for _, p := range report.Pages {
		models := make([]string, 0, len(p.Sections))
		calls := 0
		for _, s := range p.Sections {
			models = append(models, s.Model)
			calls += s.ToolCalls
		}
		rows = append(rows, []string{
			p.Source.ID,
			strings.Join(models, ", "),
			fmt.Sprint(calls),
			utils.FormatFileSize(int64(len(p.Text))),
			utils.CapitalizeWords(pageStatus(p)),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("Task", "Models", "Tool Calls", "Size", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d page(s), %d with traces\n", len(report.Pages), report.Detailed())

	for _, p := range report.Pages {
		for _, f := range p.Failures {
			line := fmt.Sprintf("task %s: skipped %s: %v", p.Source.ID, f.Model, f.Err)
			b.WriteString(failureStyle.Render(utils.TruncateString(line, maxErrorWidth)) + "\n")
		}
	}
	for _, err := range report.Errors {
		b.WriteString(failureStyle.Render(utils.TruncateString(errorLine(err), maxErrorWidth)) + "\n")
	}
	if report.OK() {
		b.WriteString(okStyle.Render("All pages rendered.") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
