package sigslot

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	owner *Owner
	calls int
	last  int
}

func newRecorder() *recorder {
	return &recorder{owner: NewOwner()}
}

func (r *recorder) onValue(v int) {
	r.calls++
	r.last = v
}

func TestOwnerLifetime(t *testing.T) {
	t.Run("method connection stops after dispose", func(t *testing.T) {
		sig := New1[int]()
		r := newRecorder()

		conn := sig.Connect(r.onValue, WithLifetime(r.owner))

		sig.Emit(5)
		assert.Equal(t, 1, r.calls)
		assert.Equal(t, 5, r.last)

		r.owner.Dispose()

		// The emission that discovers the expiry must not crash and
		// must not call the slot.
		sig.Emit(6)
		assert.Equal(t, 1, r.calls)
		assert.False(t, conn.Connected())
		assert.True(t, sig.Empty())
	})

	t.Run("dispose affects only its own slots", func(t *testing.T) {
		sig := New1[int]()
		a := newRecorder()
		b := newRecorder()

		sig.Connect(a.onValue, WithLifetime(a.owner))
		sig.Connect(b.onValue, WithLifetime(b.owner))

		a.owner.Dispose()
		sig.Emit(1)

		assert.Equal(t, 0, a.calls)
		assert.Equal(t, 1, b.calls)
	})

	t.Run("disposed owner yields an inert connection", func(t *testing.T) {
		sig := New1[int]()
		r := newRecorder()
		r.owner.Dispose()

		conn := sig.Connect(r.onValue, WithLifetime(r.owner))

		assert.False(t, conn.Connected())
		assert.True(t, sig.Empty())

		sig.Emit(1)
		assert.Equal(t, 0, r.calls)
	})

	t.Run("dispose is idempotent", func(t *testing.T) {
		o := NewOwner()
		assert.False(t, o.Expired())

		o.Dispose()
		o.Dispose()
		assert.True(t, o.Expired())
	})

	t.Run("one owner for many slots", func(t *testing.T) {
		sig := New()
		other := New1[int]()
		owner := NewOwner()
		count := 0

		sig.Connect(func() { count++ }, WithLifetime(owner))
		other.Connect(func(int) { count++ }, WithLifetime(owner))

		sig.Emit()
		other.Emit(1)
		assert.Equal(t, 2, count)

		owner.Dispose()

		sig.Emit()
		other.Emit(2)
		assert.Equal(t, 2, count)
	})

	t.Run("nil lifetime means no tracking", func(t *testing.T) {
		sig := New()
		count := 0

		conn := sig.Connect(func() { count++ }, WithLifetime(nil))
		assert.True(t, conn.Connected())

		sig.Emit()
		assert.Equal(t, 1, count)
	})
}

func TestWeakLifetime(t *testing.T) {
	t.Run("nil pointer yields an inert connection", func(t *testing.T) {
		sig := New()
		count := 0

		life := Weak[int](nil)
		assert.True(t, life.Expired())

		conn := sig.Connect(func() { count++ }, WithLifetime(life))
		assert.False(t, conn.Connected())
		assert.True(t, sig.Empty())
	})

	t.Run("alive while referenced", func(t *testing.T) {
		sig := New()
		count := 0

		target := new(int)
		conn := sig.Connect(func() { count++ }, WithLifetime(Weak(target)))

		sig.Emit()
		assert.Equal(t, 1, count)
		assert.True(t, conn.Connected())

		runtime.KeepAlive(target)
	})

	t.Run("expires once collected", func(t *testing.T) {
		sig := New()
		count := 0

		// The tracked object must not be captured by the callback, or
		// it can never be collected. It also must not be a tiny
		// pointer-free allocation: the runtime may pack one into a
		// shared block with a still-live neighbor (such as the escaped
		// count above), which keeps the weak pointer alive forever.
		life := func() Lifetime {
			return Weak(&recorder{owner: NewOwner()})
		}()

		conn := sig.Connect(func() { count++ }, WithLifetime(life))
		require.True(t, conn.Connected())

		require.Eventually(t, func() bool {
			runtime.GC()
			return life.Expired()
		}, 5*time.Second, 10*time.Millisecond)

		sig.Emit()
		assert.Equal(t, 0, count)
		assert.False(t, conn.Connected())
	})
}
