package store

import (
	"sync"
)

type Op string

const (
	OpUpsert  Op = "upsert"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
	// OpSync reports writes made by another process. Kind is empty and the
	// change reaches every subscriber.
	OpSync Op = "sync"
)

// Change tells subscribers that a table changed. Date and Key are empty for
// OpReplace and OpSync, which touch whole tables.
type Change struct {
	Kind Kind   `json:"kind"`
	Op   Op     `json:"op"`
	Date string `json:"date,omitempty"`
	Key  string `json:"key,omitempty"`
}

type subscription struct {
	id   int
	kind Kind
	fn   func(Change)
}

// hub fans changes out to subscribers. Callbacks run synchronously on the
// writer's goroutine and must not block.
type hub struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscription
}

// subscribe registers fn for changes of kind; an empty kind means every table.
func (h *hub) subscribe(kind Kind, fn func(Change)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, kind: kind, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for i, s := range h.subs {
				if s.id == id {
					h.subs = append(h.subs[:i], h.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (h *hub) publish(c Change) {
	h.mu.RLock()
	targets := make([]func(Change), 0, len(h.subs))
	for _, s := range h.subs {
		if s.kind == "" || c.Kind == "" || s.kind == c.Kind {
			targets = append(targets, s.fn)
		}
	}
	h.mu.RUnlock()

	for _, fn := range targets {
		fn(c)
	}
}

func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
