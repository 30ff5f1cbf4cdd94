package scan

import "sync"

// ScanError records one non-fatal failure encountered during a scan.
type ScanError struct {
	// Path is the file or directory the failed operation targeted.
	Path string `json:"path"`
	// Op names the operation that failed (access, stat, hash, walk).
	Op string `json:"op"`
	// Message is the underlying error text.
	Message string `json:"message"`
}

// errorLog is an append-only, goroutine-safe collector of scan failures.
// Entries are never removed and retrieval preserves insertion order.
type errorLog struct {
	mu      sync.Mutex
	entries []ScanError
}

func newErrorLog() *errorLog {
	return &errorLog{}
}

// append records a failure. Safe to call from any goroutine.
func (l *errorLog) append(op, path string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, ScanError{Path: path, Op: op, Message: err.Error()})
}

// snapshot returns a copy of the entries in insertion order.
func (l *errorLog) snapshot() []ScanError {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]ScanError, len(l.entries))
	copy(out, l.entries)

	return out
}
