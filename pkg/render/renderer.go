package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcpbench/docgen/pkg/trajectory"
)

// IconLookup resolves a server name to icon markup.
type IconLookup interface {
	Lookup(server string) (string, bool)
}

// Disclosure describes one rendered tool outcome.
type Disclosure struct {
	ID       string
	Category Category
	Name     string
	Turn     int
}

// Fragment is the rendering of one log.
type Fragment struct {
	Text        string
	Turns       int
	Disclosures []Disclosure
	// Unanswered counts calls that never received a result.
	Unanswered int
}

// Renderer turns trajectory logs into MDX fragments.
type Renderer struct {
	icons IconLookup
	ids   *DisclosureIDs
}

// New creates a renderer. ids must be shared by every log placed on the same
// page; a nil ids starts a fresh counter with an empty task id.
func New(icons IconLookup, ids *DisclosureIDs) *Renderer {
	if ids == nil {
		ids = NewDisclosureIDs("")
	}
	return &Renderer{icons: icons, ids: ids}
}

// pass holds the state of a single left-to-right walk over one log.
type pass struct {
	r     *Renderer
	out   strings.Builder
	turn  int
	calls *Registry
	frag  Fragment
}

// Render walks the log once. Structural problems (unknown roles, non-function
// calls, results without a pending call) abort the whole log.
func (r *Renderer) Render(log *trajectory.Log) (*Fragment, error) {
	p := &pass{r: r, calls: NewRegistry()}
	for i, msg := range log.Messages {
		var err error
		switch msg.Role {
		case trajectory.RoleUser:
			continue
		case trajectory.RoleAssistant:
			err = p.assistant(msg)
		case trajectory.RoleTool:
			err = p.tool(msg)
		default:
			err = newError(ErrUnsupportedMessageRole, msg.Role)
		}
		if err != nil {
			return nil, atMessage(err, i)
		}
	}
	p.frag.Text = p.out.String()
	p.frag.Turns = p.turn
	p.frag.Unanswered = p.calls.Pending()
	return &p.frag, nil
}

func (p *pass) assistant(msg trajectory.Message) error {
	p.turn++

	if !msg.HasToolCalls() {
		if msg.HasContent() {
			text := Escape(strings.TrimSpace(msg.Content.String()), EscapeBraces|EscapeAngles)
			writeThinking(&p.out, p.turn, text, false)
		}
		return nil
	}

	if msg.HasContent() {
		text := Escape(strings.TrimSpace(msg.Content.String()), EscapeBraces)
		writeThinking(&p.out, p.turn, text, true)
	}
	for _, call := range msg.ToolCalls {
		if call.Type != trajectory.FunctionToolCall {
			return newError(ErrUnsupportedToolCallType, fmt.Sprintf("%q (call %s)", call.Type, call.ID))
		}
		if err := p.calls.Register(call.ID, FormatCall(call)); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) tool(msg trajectory.Message) error {
	content := msg.Content.String()
	category := Classify(content)
	call, err := p.calls.Consume(msg.ToolCallID)
	if err != nil {
		return err
	}

	d := disclosure{
		id:       p.r.ids.Next(),
		boxClass: "error-box",
		name:     call.DisplayName(),
		turn:     p.turn,
		call:     call,
		label:    "error_message",
		output:   content,
	}
	switch category {
	case CategoryNormal:
		d.boxClass = "result-box"
		d.glyph = p.r.glyph(call.Server)
		d.label = "output_result"
		d.output = normalOutput(content)
	case CategoryError:
		d.glyph = errorGlyph
		d.output = errorSummary(content)
	case CategoryOverlong:
		d.glyph = overlongGlyph
	case CategoryNotFound:
		d.glyph = notFoundGlyph
	}
	writeDisclosure(&p.out, d)

	p.frag.Disclosures = append(p.frag.Disclosures, Disclosure{
		ID:       d.id,
		Category: category,
		Name:     d.name,
		Turn:     d.turn,
	})
	return nil
}

func (r *Renderer) glyph(server string) string {
	if r.icons != nil {
		if icon, ok := r.icons.Lookup(server); ok {
			return icon
		}
	}
	return defaultToolGlyph
}

// normalOutput prefers the "text" field of a JSON result. Anything else is
// shown raw, with object boundaries of JSON arrays broken onto separate lines.
func normalOutput(content string) string {
	var payload map[string]any
	if err := json.Unmarshal([]byte(content), &payload); err == nil {
		if text, ok := payload["text"].(string); ok {
			return strings.ReplaceAll(text, "```", "")
		}
	}
	if strings.HasPrefix(content, "[") && strings.HasSuffix(content, "]") {
		content = strings.ReplaceAll(content, "[{", "[\n{")
		content = strings.ReplaceAll(content, "}]", "}\n]")
		content = strings.ReplaceAll(content, "}, {", "},\n{")
		content = strings.ReplaceAll(content, `\n`, " ")
	}
	return content
}

// errorSummary keeps the text before the first colon.
func errorSummary(content string) string {
	summary, _, _ := strings.Cut(content, ":")
	return summary
}
