package trajectory

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Message roles found in trajectory logs
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// FunctionToolCall is the only tool call type the renderer understands.
const FunctionToolCall = "function"

// Text is a log field that is usually a JSON string but may be null or an
// arbitrary JSON value. Non-string values keep their compact JSON encoding.
type Text struct {
	Value string
	Null  bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = Text{Null: true}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text{Value: s}
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return err
	}
	*t = Text{Value: buf.String()}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	if t.Null {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

// String returns the text value; null reads as the empty string.
func (t Text) String() string {
	return t.Value
}

// ToolCall mirrors an OpenAI-style function call issued by the assistant.
type ToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments Text   `json:"arguments"`
	} `json:"function"`
}

// Message is one record of a conversation log. Which fields are meaningful
// depends on Role.
type Message struct {
	Role       string     `json:"role"`
	Content    Text       `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`

	// hasToolCallsKey records whether tool_calls appeared with a non-null value,
	// even as an empty list.
	hasToolCallsKey bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Message) UnmarshalJSON(data []byte) error {
	type plain Message
	var raw struct {
		plain
		ToolCalls json.RawMessage `json:"tool_calls"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Message(raw.plain)
	m.ToolCalls = nil
	calls := bytes.TrimSpace(raw.ToolCalls)
	if len(calls) > 0 && !bytes.Equal(calls, []byte("null")) {
		if err := json.Unmarshal(calls, &m.ToolCalls); err != nil {
			return err
		}
		if m.ToolCalls == nil {
			m.ToolCalls = []ToolCall{}
		}
		m.hasToolCallsKey = true
	}
	return nil
}

// HasToolCalls reports whether the message carried a tool_calls list, even an empty one.
func (m Message) HasToolCalls() bool {
	return m.hasToolCallsKey || len(m.ToolCalls) > 0
}

// HasContent reports whether the message has displayable content. Empty,
// null and the literal string "null" all count as absent.
func (m Message) HasContent() bool {
	if m.Content.Null {
		return false
	}
	return m.Content.Value != "" && m.Content.Value != "null"
}

// Log is one persisted trajectory for a (task, model) pair.
type Log struct {
	Messages []Message `json:"messages"`
	Pass     bool      `json:"pass"`

	// Model is derived from the file name, not from the record.
	Model string `json:"-"`
}

// ToolCallCount sums the tool calls issued across all assistant messages.
func (l *Log) ToolCallCount() int {
	n := 0
	for _, msg := range l.Messages {
		if msg.Role == RoleAssistant {
			n += len(msg.ToolCalls)
		}
	}
	return n
}

// TurnCount is the number of assistant messages.
func (l *Log) TurnCount() int {
	n := 0
	for _, msg := range l.Messages {
		if msg.Role == RoleAssistant {
			n++
		}
	}
	return n
}

// ModelFromFilename strips the directory and the .json extension.
func ModelFromFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, ".json")
}
