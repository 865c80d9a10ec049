package render

import "strings"

// Category classifies a raw tool result.
type Category int

const (
	CategoryNormal Category = iota
	CategoryError
	CategoryOverlong
	CategoryNotFound
)

// Markers that identify failure outputs.
const (
	errorMarker    = "Error running tool"
	overlongMarker = "Please check this file carefully, as it may be very long!)"
	notFoundMarker = "not found in agent"
)

func (c Category) String() string {
	switch c {
	case CategoryError:
		return "error_in_tool_call"
	case CategoryOverlong:
		return "overlong_tool_output"
	case CategoryNotFound:
		return "tool_name_not_found"
	default:
		return "normal_tool_output"
	}
}

// classificationRules are checked in order; the first match wins. A missing
// tool is usually reported inside an "Error running tool" message, so it
// outranks the generic error check.
var classificationRules = []struct {
	category Category
	matches  func(trimmed string) bool
}{
	{CategoryNotFound, func(s string) bool { return strings.Contains(s, notFoundMarker) }},
	{CategoryOverlong, func(s string) bool { return strings.HasSuffix(s, overlongMarker) }},
	{CategoryError, func(s string) bool { return strings.HasPrefix(s, errorMarker) }},
}

// Classify assigns a tool result to exactly one category. It never fails;
// anything unrecognized is a normal output.
func Classify(raw string) Category {
	trimmed := strings.TrimSpace(raw)
	for _, rule := range classificationRules {
		if rule.matches(trimmed) {
			return rule.category
		}
	}
	return CategoryNormal
}
