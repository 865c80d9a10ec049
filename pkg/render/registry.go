package render

// Registry tracks tool calls that have been issued but whose results have not
// been rendered yet. It belongs to a single render pass.
type Registry struct {
	pending map[string]PendingCall
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{pending: make(map[string]PendingCall)}
}

// Register records a call under its id.
func (r *Registry) Register(id string, call PendingCall) error {
	if _, exists := r.pending[id]; exists {
		return newError(ErrDuplicateCallID, id)
	}
	r.pending[id] = call
	return nil
}

// Resolve looks up a pending call without removing it.
func (r *Registry) Resolve(id string) (PendingCall, error) {
	call, ok := r.pending[id]
	if !ok {
		return PendingCall{}, newError(ErrUnknownCallID, id)
	}
	return call, nil
}

// Consume resolves a pending call and removes it, so each result is matched at most once.
func (r *Registry) Consume(id string) (PendingCall, error) {
	call, err := r.Resolve(id)
	if err != nil {
		return PendingCall{}, err
	}
	delete(r.pending, id)
	return call, nil
}

// Pending returns the number of calls still waiting for a result.
func (r *Registry) Pending() int {
	return len(r.pending)
}
