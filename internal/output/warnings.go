package output

import (
	"fmt"
	"sync"
)

// Warnings is an append-only queue of warning messages. Core operations
// append to it; the command layer decides when and how to report them.
type Warnings struct {
	mu   sync.Mutex
	msgs []string
}

// NewWarnings creates an empty queue.
func NewWarnings() *Warnings {
	return &Warnings{}
}

// Add appends a formatted warning. A nil queue discards it.
func (w *Warnings) Add(format string, args ...any) {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, fmt.Sprintf(format, args...))
}

// Len returns the number of queued warnings.
func (w *Warnings) Len() int {
	if w == nil {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.msgs)
}

// Flush logs every queued warning at WARN level and empties the queue.
func (w *Warnings) Flush() {
	if w == nil {
		return
	}
	w.mu.Lock()
	msgs := w.msgs
	w.msgs = nil
	w.mu.Unlock()

	for _, m := range msgs {
		Warn(m)
	}
}
