package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpbench/docgen/pkg/utils"
)

var logLines int // Number of trailing lines to show

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the verbose log",
	Long: `Displays the tail of the verbose log file (.docgen/docgen.log), which records
every page written, every file deleted and every trajectory that was skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return displayVerboseLog(os.Stdout, os.Stdin, utils.LogFilePath, logLines)
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLines, "lines", "n", 2000, "Number of trailing lines to display")
}

// displayVerboseLog prints the last maxLines lines of the log in pages of 100,
// asking before each further page.
func displayVerboseLog(out io.Writer, in io.Reader, logFilePath string, maxLines int) error {
	if _, err := os.Stat(filepath.Dir(logFilePath)); os.IsNotExist(err) {
		fmt.Fprintf(out, "Log directory %s does not exist. No log entries yet.\n", filepath.Dir(logFilePath))
		return nil
	}

	file, err := os.Open(logFilePath)
	if os.IsNotExist(err) {
		fmt.Fprintf(out, "Verbose log file not found at %s. No log entries yet.\n", logFilePath)
		return nil
	}
	if err != nil {
		return utils.NewFileSystemError("open", logFilePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read verbose log file: %w", err)
	}

	if len(lines) == 0 {
		fmt.Fprintln(out, "Verbose log file is empty.")
		return nil
	}

	startIndex := 0
	if maxLines > 0 && len(lines) > maxLines {
		startIndex = len(lines) - maxLines
	}
	displayLines := lines[startIndex:]

	const linesPerChunk = 100
	currentLineIndex := 0
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "Displaying last %d lines of %s (total %d lines available):\n", len(displayLines), logFilePath, len(lines))
	fmt.Fprintln(out, strings.Repeat("=", 80))

	for currentLineIndex < len(displayLines) {
		endIndex := currentLineIndex + linesPerChunk
		if endIndex > len(displayLines) {
			endIndex = len(displayLines)
		}

		for i := currentLineIndex; i < endIndex; i++ {
			fmt.Fprintln(out, displayLines[i])
		}
		currentLineIndex = endIndex

		if currentLineIndex < len(displayLines) {
			fmt.Fprint(out, "\nPress Enter to show more, or 'x' to exit: ")
			input, err := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input == "x" || input == "exit" || (err != nil && input == "") {
				break
			}
		}
	}
	fmt.Fprintln(out, strings.Repeat("=", 80))
	return nil
}
