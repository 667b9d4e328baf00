package checkpoint

import "sync/atomic"

// Toggle is the process-wide "checkpoints enabled" switch. It is written once during startup
// configuration and read concurrently afterwards.
type Toggle struct {
	enabled atomic.Bool
}

// NewToggle returns a Toggle in the given state.
func NewToggle(enabled bool) *Toggle {
	t := &Toggle{}
	t.enabled.Store(enabled)
	return t
}

// Enabled reports whether checkpoints are enforced. A nil Toggle counts as enabled.
func (t *Toggle) Enabled() bool {
	if t == nil {
		return true
	}
	return t.enabled.Load()
}

// Set changes the state.
func (t *Toggle) Set(enabled bool) {
	t.enabled.Store(enabled)
}
