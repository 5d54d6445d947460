package sigslot

import "github.com/signalkit/sigslot/internal"

// Signal is an event source with no payload. For signals carrying
// arguments see Signal1 through Signal5 in signals_gen.go.
//
// A Signal must be created with New; the zero value behaves like a
// closed signal.
type Signal struct {
	state *internal.State
}

// New creates an empty zero-argument signal.
func New() *Signal {
	return &Signal{state: internal.NewState()}
}

// Connect registers fn as a slot and returns its connection handle.
// A nil fn yields an inert connection.
func (s *Signal) Connect(fn func(), opts ...ConnectOption) Connection {
	if s == nil || fn == nil {
		return Connection{}
	}
	return connect(s.state, func([]any) { fn() }, opts)
}

// Emit fires the signal synchronously on the calling goroutine. Slots
// run in priority order, outside the signal's lock; a slot that panics
// does not stop its siblings.
func (s *Signal) Emit() {
	if s == nil || s.state == nil {
		return
	}
	s.state.Emit(nil)
}

// Disconnect removes the named tag and every slot registered under it.
// It reports whether the tag existed.
func (s *Signal) Disconnect(tag string) bool {
	if s == nil || s.state == nil {
		return false
	}
	return s.state.DisconnectTag(tag)
}

// DisconnectAll immediately removes every slot and tag.
func (s *Signal) DisconnectAll() {
	if s != nil && s.state != nil {
		s.state.Clear()
	}
}

// Len returns the number of connected slots not pending removal.
func (s *Signal) Len() int {
	if s == nil || s.state == nil {
		return 0
	}
	return s.state.Count()
}

// Empty reports whether the signal has no connected slots.
func (s *Signal) Empty() bool { return s.Len() == 0 }

// Valid reports whether the signal still owns live shared state.
func (s *Signal) Valid() bool {
	return s != nil && s.state != nil && !s.state.Closed()
}

// Close disconnects everything and permanently invalidates the signal:
// further Connect calls return inert connections and Emit is a safe
// no-op. Outstanding connection handles degrade to "not connected".
func (s *Signal) Close() {
	if s != nil && s.state != nil {
		s.state.Close()
	}
}
