package inmemory

import (
	"sync"

	"pocketpet/internal/app/ports"
	"pocketpet/internal/domain/pet"
)

type ActionCounts struct {
	Applied uint64 `json:"applied"`
	Noop    uint64 `json:"noop"`
	Failed  uint64 `json:"failed"`
}

type Snapshot struct {
	ActionTotal   uint64                  `json:"action_total"`
	ActionApplied uint64                  `json:"action_applied"`
	ActionNoop    uint64                  `json:"action_noop"`
	ActionFailure uint64                  `json:"action_failure"`
	ByAction      map[string]ActionCounts `json:"by_action"`
}

type Recorder struct {
	mu       sync.Mutex
	byAction map[pet.ActionType]ActionCounts
}

var _ ports.ActionMetrics = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[pet.ActionType]ActionCounts{},
	}
}

func (r *Recorder) RecordApplied(action pet.ActionType) {
	r.bump(action, func(c *ActionCounts) { c.Applied++ })
}

func (r *Recorder) RecordNoop(action pet.ActionType) {
	r.bump(action, func(c *ActionCounts) { c.Noop++ })
}

func (r *Recorder) RecordFailure(action pet.ActionType) {
	r.bump(action, func(c *ActionCounts) { c.Failed++ })
}

func (r *Recorder) bump(action pet.ActionType, f func(*ActionCounts)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.byAction[action]
	f(&c)
	r.byAction[action] = c
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{ByAction: make(map[string]ActionCounts, len(r.byAction))}
	for action, c := range r.byAction {
		out.ByAction[string(action)] = c
		out.ActionApplied += c.Applied
		out.ActionNoop += c.Noop
		out.ActionFailure += c.Failed
	}
	out.ActionTotal = out.ActionApplied + out.ActionNoop + out.ActionFailure
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
