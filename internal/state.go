package internal

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
)

// State is the mutable state a signal shares with the connections it
// has issued. It is reference-held by both sides, so a connection can
// safely outlive its signal and vice versa. One mutex guards the slot
// list and the tag registry; the per-slot flags live outside it.
type State struct {
	mu    sync.Mutex
	slots []*Slot
	tags  map[string]*Tag

	// dirty means the slot list needs a cleanup and resort before the
	// next emission. Set on every add or mark-for-removal, cleared only
	// by the cleanup pass itself.
	dirty bool

	closed atomic.Bool
}

func NewState() *State {
	return &State{tags: make(map[string]*Tag)}
}

// Add appends a slot in registration order. Reports false when the
// state has been closed, in which case the slot was not registered.
func (st *State) Add(s *Slot) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed.Load() {
		return false
	}
	st.slots = append(st.slots, s)
	st.dirty = true
	return true
}

// Remove marks a slot for removal. Compaction is deferred to the next
// emission's cleanup pass. Safe to call from inside a running slot.
func (st *State) Remove(s *Slot) {
	if s == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	s.MarkRemoved()
	st.dirty = true
}

// Tag returns the registered tag for name, creating it on first use so
// repeated connects under one name share a single tag object. Returns
// nil once the state is closed.
func (st *State) Tag(name string) *Tag {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed.Load() {
		return nil
	}
	if t, ok := st.tags[name]; ok {
		return t
	}
	t := &Tag{name: name}
	st.tags[name] = t
	return t
}

// DisconnectTag drops the named tag from the registry, revokes it, and
// flags every slot tracking it for removal. Reports whether a tag with
// that name existed.
func (st *State) DisconnectTag(name string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	t, ok := st.tags[name]
	if !ok {
		return false
	}
	delete(st.tags, name)
	t.revoked.Store(true)
	for _, s := range st.slots {
		if tr, ok := s.tracked.(*Tag); ok && tr == t {
			s.MarkRemoved()
		}
	}
	st.dirty = true
	return true
}

// Clear synchronously empties the slot list and tag registry. Slots are
// marked removed first so outstanding connection handles observe the
// disconnect.
func (st *State) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, s := range st.slots {
		s.MarkRemoved()
	}
	st.slots = nil
	clear(st.tags)
	st.dirty = false
}

// Close clears the state and refuses all further registrations.
func (st *State) Close() {
	st.closed.Store(true)
	st.Clear()
}

func (st *State) Closed() bool { return st.closed.Load() }

// Count returns the number of slots not flagged for removal.
func (st *State) Count() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for _, s := range st.slots {
		if !s.Removed() {
			n++
		}
	}
	return n
}

// Emit runs one synchronous emission on the calling goroutine: lazy
// cleanup and stable resort under the lock, then callback invocation on
// a snapshot outside it. Slots connected during the emission are not
// part of the snapshot and only run from the next emission. A slot
// disconnected mid-emission may still run once if it was already
// snapshotted and not yet reached; from the next emission the
// disconnect is always effective. Recursive emission from inside a slot
// takes its own lock acquisition and snapshot.
func (st *State) Emit(args []any) {
	st.mu.Lock()
	if len(st.slots) == 0 {
		st.mu.Unlock()
		return
	}
	if st.dirty {
		st.slots = slices.DeleteFunc(st.slots, func(s *Slot) bool {
			return s.Removed()
		})
		// Stable: equal priorities keep their registration order.
		slices.SortStableFunc(st.slots, func(a, b *Slot) int {
			return cmp.Compare(b.priority, a.priority)
		})
		st.dirty = false
	}
	snapshot := slices.Clone(st.slots)
	st.mu.Unlock()

	marked := false
	for _, s := range snapshot {
		if s.Expired() {
			// The owner or tag died since the last cleanup pass.
			s.MarkRemoved()
			marked = true
			continue
		}
		if !s.Callable() {
			continue
		}
		if !s.TryAcquire() {
			continue
		}
		if s.Once() {
			// Flag before invoking so a recursive emission from inside
			// the callback can never run it a second time.
			s.MarkRemoved()
			marked = true
		}
		invoke(s, args)
	}

	if marked {
		st.mu.Lock()
		st.dirty = true
		st.mu.Unlock()
	}
}

// invoke shields the emission from a panicking callback. The panic is
// discarded so the remaining slots in the snapshot still run; reporting
// failures is the slot's own business.
func invoke(s *Slot, args []any) {
	defer func() { _ = recover() }()
	s.fn(args)
}
