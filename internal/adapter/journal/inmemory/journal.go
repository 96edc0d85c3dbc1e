// Package inmemory is a bounded, process-local ports.Journal.
package inmemory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"pocketpet/internal/app/ports"
)

const DefaultCapacity = 200

// Journal keeps the most recent Capacity events in a ring.
type Journal struct {
	mu    sync.Mutex
	buf   []ports.Event
	next  int
	full  bool
	newID func() string
}

var _ ports.Journal = (*Journal)(nil)

// New returns a journal holding up to capacity events. A non-positive
// capacity uses DefaultCapacity.
func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{
		buf:   make([]ports.Event, capacity),
		newID: func() string { return uuid.NewString() },
	}
}

func (j *Journal) Append(_ context.Context, events ...ports.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, e := range events {
		if e.ID == "" {
			e.ID = j.newID()
		}
		j.buf[j.next] = e
		j.next = (j.next + 1) % len(j.buf)
		if j.next == 0 {
			j.full = true
		}
	}
	return nil
}

// List returns up to limit events, newest first. A non-positive limit returns all retained events.
func (j *Journal) List(_ context.Context, limit int) ([]ports.Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := j.len()
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]ports.Event, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (j.next - i + len(j.buf)) % len(j.buf)
		out = append(out, j.buf[idx])
	}
	return out, nil
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.len()
}

func (j *Journal) len() int {
	if j.full {
		return len(j.buf)
	}
	return j.next
}
