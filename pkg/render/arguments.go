package render

import (
	"encoding/json"
	"strings"

	"github.com/mcpbench/docgen/pkg/trajectory"
)

// Call names with dedicated formatting
const (
	pythonExecuteCall = "local-python-execute"
	fileWriteCall     = "filesystem-write_file"
	overlongCallMark  = "overlong"
)

// fenceReplacement stands in for ``` inside file contents so the surrounding
// code fence stays intact.
const fenceReplacement = "`*3"

// CallKind selects how a call's arguments are displayed.
type CallKind int

const (
	// KindBlock shows the formatted arguments in a json block.
	KindBlock CallKind = iota
	// KindCode shows extracted source code in a python block.
	KindCode
	// KindEmpty is a call without arguments; it renders as {}.
	KindEmpty
)

// PendingCall is what the renderer remembers about a call until its result arrives.
type PendingCall struct {
	Server    string
	Function  string
	Arguments string
	Code      string
	Kind      CallKind
}

// DisplayName is the label shown in a disclosure header.
func (p PendingCall) DisplayName() string {
	if p.Function == "" {
		return p.Server
	}
	return p.Server + " " + p.Function
}

// FormatCall turns a tool call into its display form. Argument decoding
// failures fall back to the raw argument text.
func FormatCall(call trajectory.ToolCall) PendingCall {
	name := call.Function.Name
	args := call.Function.Arguments.String()

	switch {
	case name == pythonExecuteCall:
		return PendingCall{
			Server: "python-execute",
			Code:   extractCode(args),
			Kind:   KindCode,
		}
	case strings.Contains(name, overlongCallMark):
		server := strings.ReplaceAll(name, "local-", "")
		server = strings.ReplaceAll(server, "tooloutput", "tool_output")
		return argumentBlock(server, "", splitArguments(args, false))
	case name == fileWriteCall:
		body := args
		if fw, ok := FormatFileWrite(args); ok {
			body = fw.DisplayName + "\n" + fw.Body
		}
		return PendingCall{
			Server:    "filesystem",
			Function:  "write_file",
			Arguments: body,
			Kind:      KindBlock,
		}
	default:
		server, function := SplitCallName(name)
		return argumentBlock(server, function, splitArguments(args, true))
	}
}

// FileWrite is the display form of a filesystem write.
type FileWrite struct {
	DisplayName string
	Body        string
}

// FormatFileWrite decodes {"path", "content"} arguments. The display name is
// the last path segment; code fences in the content are neutralized.
func FormatFileWrite(args string) (FileWrite, bool) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(args), &payload); err != nil {
		return FileWrite{}, false
	}
	path, ok := payload["path"].(string)
	if !ok {
		return FileWrite{}, false
	}
	content, ok := payload["content"].(string)
	if !ok {
		return FileWrite{}, false
	}
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	return FileWrite{
		DisplayName: name,
		Body:        strings.ReplaceAll(content, "```", fenceReplacement),
	}, true
}

// extractCode pulls the "code" field out of python-execute arguments.
func extractCode(args string) string {
	var payload any
	if err := json.Unmarshal([]byte(args), &payload); err != nil {
		return args
	}
	switch v := payload.(type) {
	case map[string]any:
		code, ok := v["code"]
		if !ok {
			return args
		}
		if s, ok := code.(string); ok {
			return s
		}
		encoded, err := json.Marshal(code)
		if err != nil {
			return args
		}
		return string(encoded)
	case string:
		return v
	default:
		return args
	}
}

// splitArguments strips the outer braces and splits on commas. The text is
// not parsed as JSON; arguments are frequently not valid JSON.
func splitArguments(args string, trim bool) []string {
	inner := strings.TrimSpace(args)
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	} else {
		inner = ""
	}
	parts := strings.Split(inner, ",")
	if trim {
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
	}
	return parts
}

func argumentBlock(server, function string, parts []string) PendingCall {
	if len(parts) == 1 && strings.TrimSpace(parts[0]) == "" {
		return PendingCall{Server: server, Function: function, Arguments: "{}", Kind: KindEmpty}
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, part := range parts {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("\t")
		b.WriteString(part)
	}
	b.WriteString("\n}")
	return PendingCall{Server: server, Function: function, Arguments: b.String(), Kind: KindBlock}
}
