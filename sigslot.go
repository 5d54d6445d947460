// Package sigslot implements a thread-safe signal/slot primitive: typed
// signals that invoke registered callbacks (slots) in priority order,
// with lifetime-tracked automatic detachment, single-shot slots,
// tag-based group disconnection, and safe concurrent mutation during
// emission.
//
//	clicked := sigslot.New1[string]()
//
//	conn := clicked.Connect(func(id string) {
//		fmt.Println("clicked", id)
//	}, sigslot.WithPriority(10))
//
//	clicked.Emit("ok-button")
//	conn.Disconnect()
//
// Emission is synchronous and runs on the calling goroutine. Slots run
// outside the signal's lock, so a slot may freely connect, disconnect,
// or re-emit on the same signal.
package sigslot

import "github.com/signalkit/sigslot/internal"

// ConnectOption configures one slot at registration time.
type ConnectOption func(*connectConfig)

type connectConfig struct {
	priority int
	once     bool
	tagName  string
	hasTag   bool
	lifetime Lifetime
}

// WithPriority orders the slot within emissions: higher priorities run
// first, equal priorities keep their registration order. The default
// priority is 0.
func WithPriority(p int) ConnectOption {
	return func(c *connectConfig) { c.priority = p }
}

// Once makes the slot single-shot: it executes at most once across its
// lifetime, even when concurrent emissions race for it, and is removed
// after that execution.
func Once() ConnectOption {
	return func(c *connectConfig) { c.once = true }
}

// WithTag tracks the signal's shared tag object for name, so the slot
// can later be disconnected in bulk with the signal's Disconnect(name).
// A slot has a single tracked reference: WithTag and WithLifetime are
// mutually exclusive and the last option given wins.
func WithTag(name string) ConnectOption {
	return func(c *connectConfig) {
		c.hasTag = true
		c.tagName = name
		c.lifetime = nil
	}
}

// WithLifetime ties the slot to l: the slot stops firing, permanently,
// once l expires. A nil l means no tracking. An l that is already
// expired yields an inert connection and registers nothing.
func WithLifetime(l Lifetime) ConnectOption {
	return func(c *connectConfig) {
		c.lifetime = l
		c.hasTag = false
	}
}

// connect is the single registration path behind every typed facade.
func connect(st *internal.State, fn func(args []any), opts []ConnectOption) Connection {
	if st == nil || st.Closed() {
		return Connection{}
	}

	var cfg connectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	tracked := cfg.lifetime
	if cfg.hasTag {
		t := st.Tag(cfg.tagName)
		if t == nil {
			return Connection{}
		}
		tracked = t
	}
	if tracked != nil && tracked.Expired() {
		return Connection{}
	}

	slot := internal.NewSlot(fn, cfg.priority, cfg.once, tracked)
	if !st.Add(slot) {
		return Connection{}
	}
	return Connection{state: st, slot: slot}
}

// as unboxes an emitted argument, mapping a nil interface back to the
// zero value so interface-typed payloads round-trip.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
