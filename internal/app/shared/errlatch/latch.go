// Package errlatch keeps the outcome of the most recent engine operation.
package errlatch

import "sync"

// Latch holds the error of the last operation until the next one replaces it.
// The zero value is ready to use.
type Latch struct {
	mu  sync.Mutex
	err error
}

// Set latches err (nil clears it) and returns it unchanged.
func (l *Latch) Set(err error) error {
	l.mu.Lock()
	l.err = err
	l.mu.Unlock()
	return err
}

func (l *Latch) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
