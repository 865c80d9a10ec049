package render

import "fmt"

// DisclosureIDs hands out element ids that are unique within one page. Share
// one instance across every log rendered onto the same page.
type DisclosureIDs struct {
	taskID string
	n      int
}

// NewDisclosureIDs starts a counter for the given task.
func NewDisclosureIDs(taskID string) *DisclosureIDs {
	return &DisclosureIDs{taskID: taskID}
}

// Next returns a fresh id.
func (d *DisclosureIDs) Next() string {
	d.n++
	return fmt.Sprintf("tool-result-%s-%d", d.taskID, d.n)
}
