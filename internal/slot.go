package internal

import "sync/atomic"

// Lifetime is anything whose expiry can be observed. A slot carrying a
// tracked Lifetime becomes permanently uncallable once it expires.
// Expired must be safe to call from any goroutine and must never flip
// back to false.
type Lifetime interface {
	Expired() bool
}

// Slot is one registered callback plus its scheduling metadata. The
// flags are independent atomics so liveness checks and block/unblock
// never contend with the state mutex.
type Slot struct {
	fn       func(args []any)
	priority int
	once     bool

	blocked atomic.Bool
	removed atomic.Bool
	fired   atomic.Bool

	// tracked is nil when the slot was connected without lifetime
	// tracking. A non-nil expired reference means the owner or tag is
	// gone and the slot must never run again.
	tracked Lifetime
}

func NewSlot(fn func(args []any), priority int, once bool, tracked Lifetime) *Slot {
	return &Slot{fn: fn, priority: priority, once: once, tracked: tracked}
}

// Callable reports whether the slot may run right now: not blocked, not
// pending removal, and its tracked reference (if any) still alive.
func (s *Slot) Callable() bool {
	if s.blocked.Load() || s.removed.Load() {
		return false
	}
	return !s.Expired()
}

// TryAcquire claims the right to run the callback. Multi-shot slots
// always succeed without touching any state. For once slots exactly one
// caller wins the swap; every concurrent loser must not invoke.
func (s *Slot) TryAcquire() bool {
	if !s.once {
		return true
	}
	return s.fired.CompareAndSwap(false, true)
}

// MarkRemoved flags the slot for removal. One-way and idempotent; the
// slot list is compacted later, during the next emission's cleanup.
func (s *Slot) MarkRemoved() { s.removed.Store(true) }

func (s *Slot) Removed() bool { return s.removed.Load() }

func (s *Slot) Once() bool { return s.once }

func (s *Slot) SetBlocked(b bool) { s.blocked.Store(b) }

func (s *Slot) Blocked() bool { return s.blocked.Load() }

// Expired reports whether a tracked reference was configured and has
// since died. A slot that never tracked anything reports false.
func (s *Slot) Expired() bool {
	return s.tracked != nil && s.tracked.Expired()
}
