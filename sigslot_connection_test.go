package sigslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnection(t *testing.T) {
	t.Run("disconnect stops delivery", func(t *testing.T) {
		sig := New1[int]()
		count := 0

		conn := sig.Connect(func(int) { count++ })
		assert.True(t, conn.Connected())

		sig.Emit(1)
		assert.Equal(t, 1, count)

		conn.Disconnect()
		assert.False(t, conn.Connected())

		sig.Emit(2)
		assert.Equal(t, 1, count)
	})

	t.Run("disconnect is idempotent", func(t *testing.T) {
		sig := New()
		conn := sig.Connect(func() {})

		conn.Disconnect()
		conn.Disconnect()
		assert.False(t, conn.Connected())
		assert.True(t, sig.Empty())
	})

	t.Run("block and unblock", func(t *testing.T) {
		sig := New()
		count := 0

		conn := sig.Connect(func() { count++ })

		conn.Block()
		assert.True(t, conn.Blocked())
		// Blocked is not disconnected.
		assert.True(t, conn.Connected())
		assert.Equal(t, 1, sig.Len())

		sig.Emit()
		assert.Equal(t, 0, count)

		conn.Unblock()
		assert.False(t, conn.Blocked())

		sig.Emit()
		assert.Equal(t, 1, count)
	})

	t.Run("reset drops the handle only", func(t *testing.T) {
		sig := New()
		count := 0

		conn := sig.Connect(func() { count++ })
		conn.Reset()

		assert.False(t, conn.Connected())
		conn.Disconnect() // no-op now

		// The slot itself is still registered.
		sig.Emit()
		assert.Equal(t, 1, count)
		assert.Equal(t, 1, sig.Len())
	})

	t.Run("zero value is inert", func(t *testing.T) {
		var conn Connection

		assert.False(t, conn.Connected())
		assert.False(t, conn.Blocked())
		conn.Disconnect()
		conn.Block()
		conn.Unblock()
		conn.Reset()
	})

	t.Run("handle outlives closed signal", func(t *testing.T) {
		sig := New()
		conn := sig.Connect(func() {})

		sig.Close()

		assert.False(t, conn.Connected())
		conn.Disconnect()
		conn.Block()
	})

	t.Run("copies share the slot", func(t *testing.T) {
		sig := New()
		conn := sig.Connect(func() {})
		other := conn

		other.Disconnect()
		assert.False(t, conn.Connected())
	})
}

func TestScopedConnection(t *testing.T) {
	t.Run("close disconnects", func(t *testing.T) {
		sig := New()
		count := 0

		sc := Scoped(sig.Connect(func() { count++ }))
		sig.Emit()
		assert.Equal(t, 1, count)

		assert.NoError(t, sc.Close())
		sig.Emit()
		assert.Equal(t, 1, count)
		assert.True(t, sig.Empty())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		sig := New()
		sc := Scoped(sig.Connect(func() {}))

		assert.NoError(t, sc.Close())
		assert.NoError(t, sc.Close())
	})

	t.Run("set replaces and disconnects previous", func(t *testing.T) {
		sig := New()
		log := []string{}

		sc := Scoped(sig.Connect(func() { log = append(log, "a") }))
		sc.Set(sig.Connect(func() { log = append(log, "b") }))

		sig.Emit()
		assert.Equal(t, []string{"b"}, log)

		assert.NoError(t, sc.Close())
		sig.Emit()
		assert.Equal(t, []string{"b"}, log)
	})

	t.Run("release transfers ownership", func(t *testing.T) {
		sig := New()
		count := 0

		sc := Scoped(sig.Connect(func() { count++ }))
		conn := sc.Release()

		// Closing the now-inert scope must not disconnect.
		assert.NoError(t, sc.Close())
		assert.True(t, conn.Connected())

		sig.Emit()
		assert.Equal(t, 1, count)

		conn.Disconnect()
		assert.True(t, sig.Empty())
	})
}

func TestConnectionGroup(t *testing.T) {
	t.Run("disconnects everything it owns", func(t *testing.T) {
		sig := New()
		other := New1[int]()
		count := 0

		var group ConnectionGroup
		group.Add(sig.Connect(func() { count++ }))
		group.Add(sig.Connect(func() { count++ }))
		group.Add(other.Connect(func(int) { count++ }))
		assert.Equal(t, 3, group.Len())

		sig.Emit()
		other.Emit(1)
		assert.Equal(t, 3, count)

		group.DisconnectAll()
		assert.True(t, group.Empty())
		assert.True(t, sig.Empty())
		assert.True(t, other.Empty())

		sig.Emit()
		other.Emit(2)
		assert.Equal(t, 3, count)
	})

	t.Run("grows incrementally", func(t *testing.T) {
		sig := New()
		var group ConnectionGroup
		assert.True(t, group.Empty())

		group.Add(sig.Connect(func() {}))
		assert.Equal(t, 1, group.Len())

		group.DisconnectAll()
		group.Add(sig.Connect(func() {}))
		assert.Equal(t, 1, group.Len())
	})
}
