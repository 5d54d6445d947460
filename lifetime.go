package sigslot

import (
	"sync/atomic"
	"weak"

	"github.com/signalkit/sigslot/internal"
)

// Lifetime is the contract between a signal and anything it tracks on
// behalf of a slot: an owner object, a tag, anything whose expiry can
// be observed. Once Expired reports true it must never report false
// again; the slot tracking it is permanently uncallable from then on.
type Lifetime = internal.Lifetime

// Owner is an explicit, deterministic lifetime. Connect a method value
// together with its receiver's Owner and the slot stops firing the
// moment the owner is disposed, with no further bookkeeping:
//
//	conn := sig.Connect(recv.OnEvent, sigslot.WithLifetime(recv.Owner()))
//	...
//	recv.Close() // disposes the owner; the slot never fires again
type Owner struct {
	dead atomic.Bool
}

func NewOwner() *Owner { return &Owner{} }

// Dispose expires the owner. Idempotent.
func (o *Owner) Dispose() { o.dead.Store(true) }

// Expired implements Lifetime.
func (o *Owner) Expired() bool { return o == nil || o.dead.Load() }

// Weak derives a Lifetime from a pointer without keeping the pointee
// alive: once the program drops its last strong reference and the
// object is collected, the lifetime expires. The slot callback must not
// itself capture p, or the object can never be collected; when the
// callback is a method of p, prefer an explicit Owner. A nil p yields
// an already expired lifetime, so connecting with it is an inert no-op.
//
// Expiry follows the collector's reachability rules, not the program's
// last use. In particular, a pointer-free object under 16 bytes can be
// placed by the runtime in a shared tiny-allocation block and stays
// alive as long as any neighbor in that block does; track a larger
// object, or one containing pointers, for dependable expiry.
func Weak[T any](p *T) Lifetime {
	if p == nil {
		return expiredLifetime{}
	}
	return weakLifetime[T]{p: weak.Make(p)}
}

type weakLifetime[T any] struct {
	p weak.Pointer[T]
}

func (w weakLifetime[T]) Expired() bool { return w.p.Value() == nil }

type expiredLifetime struct{}

func (expiredLifetime) Expired() bool { return true }
