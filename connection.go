package sigslot

import (
	"sync"

	"github.com/signalkit/sigslot/internal"
)

// Connection is the caller-held handle to one slot registration. The
// zero value is inert: every operation on it is a safe no-op or answers
// "not connected". Copies share the same underlying slot. A Connection
// never keeps slots alive on its own; it only references state owned by
// the signal.
type Connection struct {
	state *internal.State
	slot  *internal.Slot
}

// Connected reports whether the slot still exists and is not pending
// removal.
func (c Connection) Connected() bool {
	return c.slot != nil && !c.slot.Removed()
}

// Disconnect flags the slot for removal. It is deterministic for future
// emissions; an emission already holding a snapshot may still run the
// slot one last time. No-op when the signal or slot is gone.
func (c Connection) Disconnect() {
	if c.state != nil {
		c.state.Remove(c.slot)
	}
}

// Block suspends callback delivery without disconnecting. Blocking does
// not touch the slot's removal or single-shot state.
func (c Connection) Block() {
	if c.slot != nil {
		c.slot.SetBlocked(true)
	}
}

// Unblock resumes delivery after Block.
func (c Connection) Unblock() {
	if c.slot != nil {
		c.slot.SetBlocked(false)
	}
}

// Blocked reports whether the slot is currently blocked.
func (c Connection) Blocked() bool {
	return c.slot != nil && c.slot.Blocked()
}

// Reset drops this handle's references. The slot itself stays
// connected.
func (c *Connection) Reset() {
	c.state = nil
	c.slot = nil
}

// ScopedConnection owns a single Connection and disconnects it when
// closed or replaced. Use it to bind a slot's registration to the
// lifetime of a scope:
//
//	sc := sigslot.Scoped(sig.Connect(onEvent))
//	defer sc.Close()
type ScopedConnection struct {
	conn Connection
}

// Scoped wraps c in an owning ScopedConnection.
func Scoped(c Connection) *ScopedConnection {
	return &ScopedConnection{conn: c}
}

// Close disconnects the owned connection and drops it. Implements
// io.Closer; repeated calls are no-ops.
func (s *ScopedConnection) Close() error {
	s.conn.Disconnect()
	s.conn.Reset()
	return nil
}

// Set replaces the owned connection, disconnecting the previous one.
func (s *ScopedConnection) Set(c Connection) {
	s.conn.Disconnect()
	s.conn = c
}

// Release transfers the connection back to the caller without
// disconnecting it. The ScopedConnection becomes inert.
func (s *ScopedConnection) Release() Connection {
	c := s.conn
	s.conn.Reset()
	return c
}

// Conn returns the owned connection without releasing ownership.
func (s *ScopedConnection) Conn() Connection { return s.conn }

// ConnectionGroup owns an ordered collection of connections and
// disconnects them together. Useful when one object holds registrations
// on many signals. Safe for concurrent use.
type ConnectionGroup struct {
	mu    sync.Mutex
	conns []Connection
}

// Add takes ownership of c.
func (g *ConnectionGroup) Add(c Connection) {
	g.mu.Lock()
	g.conns = append(g.conns, c)
	g.mu.Unlock()
}

// DisconnectAll disconnects and releases every owned connection.
func (g *ConnectionGroup) DisconnectAll() {
	g.mu.Lock()
	conns := g.conns
	g.conns = nil
	g.mu.Unlock()

	for _, c := range conns {
		c.Disconnect()
	}
}

// Len returns the number of owned connections.
func (g *ConnectionGroup) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.conns)
}

// Empty reports whether the group owns no connections.
func (g *ConnectionGroup) Empty() bool { return g.Len() == 0 }
