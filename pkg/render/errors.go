package render

import (
	"errors"
	"fmt"
)

// Structural failures. Each aborts the render of the current log.
var (
	ErrUnsupportedToolCallType = errors.New("unsupported tool call type")
	ErrUnsupportedMessageRole  = errors.New("unsupported message role")
	ErrUnknownCallID           = errors.New("unknown tool call id")
	ErrDuplicateCallID         = errors.New("duplicate tool call id")
)

// Error locates a structural failure within a log. It matches its Kind
// through errors.Is.
type Error struct {
	Kind   error
	Detail string
	// Index is the position of the offending message, or -1 when unknown.
	Index int
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("message %d: %v: %s", e.Index, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

// Unwrap returns the sentinel kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Index: -1}
}

// atMessage stamps the message index on render errors that lack one.
func atMessage(err error, index int) error {
	var rerr *Error
	if errors.As(err, &rerr) && rerr.Index < 0 {
		located := *rerr
		located.Index = index
		return &located
	}
	return err
}
