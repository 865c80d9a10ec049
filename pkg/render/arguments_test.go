package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpbench/docgen/pkg/trajectory"
)

func toolCall(id, name, args string) trajectory.ToolCall {
	var call trajectory.ToolCall
	call.ID = id
	call.Type = trajectory.FunctionToolCall
	call.Function.Name = name
	call.Function.Arguments = trajectory.Text{Value: args}
	return call
}

func TestFormatCallPythonExecute(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{name: "code field", args: `{"code": "print(1)"}`, want: "print(1)"},
		{name: "not json", args: "not json", want: "not json"},
		{name: "json string payload", args: `"print(2)"`, want: "print(2)"},
		{name: "object without code", args: `{"filename": "a.py"}`, want: `{"filename": "a.py"}`},
		{name: "non-string code", args: `{"code": 42}`, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := FormatCall(toolCall("1", "local-python-execute", tt.args))
			assert.Equal(t, KindCode, call.Kind)
			assert.Equal(t, tt.want, call.Code)
			assert.Equal(t, "python-execute", call.DisplayName())
		})
	}
}

func TestFormatFileWrite(t *testing.T) {
	fw, ok := FormatFileWrite(`{"path": "/a/b/c.txt", "content": "x` + "```" + `y"}`)
	require.True(t, ok)
	assert.Equal(t, "c.txt", fw.DisplayName)
	assert.Equal(t, "x`*3y", fw.Body)

	call := FormatCall(toolCall("1", "filesystem-write_file", `{"path": "/a/b/c.txt", "content": "hello"}`))
	assert.Equal(t, "filesystem", call.Server)
	assert.Equal(t, "write_file", call.Function)
	assert.Equal(t, "c.txt\nhello", call.Arguments)
	assert.Equal(t, KindBlock, call.Kind)
}

func TestFormatFileWriteFallsBackToRawArguments(t *testing.T) {
	for _, args := range []string{`{"path": "/a.txt"`, `{"path": "/a.txt"}`, `{"path": 1, "content": "x"}`} {
		_, ok := FormatFileWrite(args)
		assert.False(t, ok, args)

		call := FormatCall(toolCall("1", "filesystem-write_file", args))
		assert.Equal(t, args, call.Arguments)
	}
}

func TestFormatCallOverlongHandler(t *testing.T) {
	call := FormatCall(toolCall("1", "local-search_overlong_tooloutput", `{"shortuuid": "abc","pattern":"x"}`))

	assert.Equal(t, "search_overlong_tool_output", call.Server)
	assert.Equal(t, "", call.Function)
	assert.Equal(t, "{\n\t\"shortuuid\": \"abc\",\n\t\"pattern\":\"x\"\n}", call.Arguments)
}

func TestFormatCallGeneric(t *testing.T) {
	call := FormatCall(toolCall("1", "github-search_issues", `{"q": "bug", "page": 2}`))

	assert.Equal(t, "github", call.Server)
	assert.Equal(t, "search_issues", call.Function)
	assert.Equal(t, "github search_issues", call.DisplayName())
	assert.Equal(t, "{\n\t\"q\": \"bug\",\n\t\"page\": 2\n}", call.Arguments)
	assert.Equal(t, KindBlock, call.Kind)
}

func TestFormatCallKeepsNonJSONArgumentsVerbatim(t *testing.T) {
	call := FormatCall(toolCall("1", "memory-read_graph", `{note: it's {nested}, ok}`))
	assert.Equal(t, "{\n\tnote: it's {nested},\n\tok\n}", call.Arguments)
}

func TestFormatCallEmptyArguments(t *testing.T) {
	for _, args := range []string{"", "{}", "  {}  "} {
		call := FormatCall(toolCall("1", "fetch-fetch", args))
		assert.Equal(t, KindEmpty, call.Kind, args)
		assert.Equal(t, "{}", call.Arguments, args)
	}
}

func TestSplitCallName(t *testing.T) {
	tests := []struct {
		name         string
		wantServer   string
		wantFunction string
	}{
		{"local-claim_done", "claim_done", ""},
		{"local-python-execute", "pythonexecute", ""},
		{"google-cloud-bigquery_run_query", "google-cloud", "bigquery_run_query"},
		{"yahoo-finance-get_stock_info", "yahoo-finance", "get_stock_info"},
		{"pdf-tools-read_pdf_pages", "pdf-tools", "read_pdf_pages"},
		{"pdf-tools", "pdf-tools", ""},
		{"playwright_with_chunk-browser_click", "playwright_with_chunk", "browser_click"},
		{"arxiv-latex-get_paper_prompt", "arxiv", "latex-get_paper_prompt"},
		{"single", "single", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, function := SplitCallName(tt.name)
			assert.Equal(t, tt.wantServer, server)
			assert.Equal(t, tt.wantFunction, function)
		})
	}
}
