package utils

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecord struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	CID   string `json:"cid"`
}

func TestLogger_JSONModeWritesJSONWithCID(t *testing.T) {
	orig, _ := os.Getwd()
	dir := t.TempDir()
	defer os.Chdir(orig)
	_ = os.Chdir(dir)

	t.Setenv("DOCGEN_JSON_LOGS", "1")
	t.Setenv("DOCGEN_CORRELATION_ID", "abc123")

	l := GetLogger(true)
	l.Log("hello world")
	_ = l.Close()

	// Read the last JSON object from the log file; lumberjack writes raw JSON lines
	f, err := os.Open(LogFilePath)
	require.NoError(t, err)
	defer f.Close()
	var lastLine string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lastLine = scanner.Text()
	}
	require.NoError(t, scanner.Err())

	var rec logRecord
	require.NoError(t, json.Unmarshal([]byte(lastLine), &rec), "content=%q", lastLine)
	assert.Equal(t, logRecord{Level: "info", Msg: "hello world", CID: "abc123"}, rec)
}

func TestLoggerPlainMode(t *testing.T) {
	var file, console bytes.Buffer
	l := NewLogger(&file, &console, strings.NewReader(""), true)

	l.Logf("rendered %d pages", 3)
	l.LogError(errors.New("boom"))
	l.LogProcessStep("rendering task 12")
	l.LogWorkspaceOperation("write", "docs/tasks/a/12.mdx")

	assert.Contains(t, file.String(), "rendered 3 pages")
	assert.Contains(t, file.String(), "Error: boom")
	assert.Contains(t, file.String(), "Process Step: rendering task 12")
	assert.Contains(t, file.String(), "Operation: write, Details: docs/tasks/a/12.mdx")
	assert.Equal(t, "rendering task 12\n", console.String())
	assert.NotEmpty(t, l.CorrelationID())
}

func TestAskForConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		skipPrompts bool
		def         bool
		want        bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "short no", input: "n\n", def: true, want: false},
		{name: "retry after invalid", input: "maybe\ny\n", want: true},
		{name: "closed input uses default", input: "", def: true, want: true},
		{name: "skipped prompts use default", input: "no\n", skipPrompts: true, def: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var file, console bytes.Buffer
			l := NewLogger(&file, &console, strings.NewReader(tt.input), tt.skipPrompts)
			assert.Equal(t, tt.want, l.AskForConfirmation("Delete files?", tt.def))
		})
	}
}
