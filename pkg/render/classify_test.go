package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Category
	}{
		{name: "plain output", raw: `{"type":"text","text":"ok"}`, want: CategoryNormal},
		{name: "empty", raw: "", want: CategoryNormal},
		{name: "error prefix", raw: "Error running tool: boom", want: CategoryError},
		{name: "error prefix after whitespace", raw: "\n  Error running tool x", want: CategoryError},
		{name: "error marker not at start", raw: "note: Error running tool", want: CategoryNormal},
		{
			name: "overlong sentinel",
			raw:  "saved to /tmp/out.json (Please check this file carefully, as it may be very long!)\n",
			want: CategoryOverlong,
		},
		{name: "tool not found", raw: "Tool foo not found in agent bar", want: CategoryNotFound},
		{
			name: "missing tool reported as error",
			raw:  "Error running tool: Tool foo not found in agent bar",
			want: CategoryNotFound,
		},
		{
			name: "error that was also truncated",
			raw:  "Error running tool: huge (Please check this file carefully, as it may be very long!)",
			want: CategoryOverlong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "normal_tool_output", CategoryNormal.String())
	assert.Equal(t, "error_in_tool_call", CategoryError.String())
	assert.Equal(t, "overlong_tool_output", CategoryOverlong.String())
	assert.Equal(t, "tool_name_not_found", CategoryNotFound.String())
}
