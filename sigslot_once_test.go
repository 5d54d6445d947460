package sigslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnce(t *testing.T) {
	t.Run("runs exactly once", func(t *testing.T) {
		sig := New1[int]()
		count := 0

		conn := sig.Connect(func(int) { count++ }, Once())

		sig.Emit(1)
		assert.Equal(t, 1, count)
		assert.False(t, conn.Connected())

		sig.Emit(2)
		sig.Emit(3)
		assert.Equal(t, 1, count)
		assert.True(t, sig.Empty())
	})

	t.Run("multiple single-shot slots", func(t *testing.T) {
		sig := New()
		log := []int{}

		sig.Connect(func() { log = append(log, 1) }, Once())
		sig.Connect(func() { log = append(log, 2) }, Once())
		sig.Connect(func() { log = append(log, 3) })

		sig.Emit()
		sig.Emit()

		assert.Equal(t, []int{1, 2, 3, 3}, log)
		assert.Equal(t, 1, sig.Len())
	})

	t.Run("single-shot with partial arguments", func(t *testing.T) {
		sig := New2[int, string]()
		count := 0

		sig.Connect0(func() { count++ }, Once())

		sig.Emit(1, "a")
		sig.Emit(2, "b")
		assert.Equal(t, 1, count)
	})

	t.Run("single-shot with priority", func(t *testing.T) {
		sig := New()
		log := []string{}

		sig.Connect(func() { log = append(log, "once") }, Once(), WithPriority(10))
		sig.Connect(func() { log = append(log, "always") })

		sig.Emit()
		sig.Emit()

		assert.Equal(t, []string{"once", "always", "always"}, log)
	})

	t.Run("re-emitting from inside a single-shot slot", func(t *testing.T) {
		sig := New()
		count := 0

		sig.Connect(func() {
			count++
			// The slot is already flagged; the nested emission must not
			// run it a second time.
			sig.Emit()
		}, Once())

		sig.Emit()
		assert.Equal(t, 1, count)
	})

	t.Run("blocked single-shot keeps its shot", func(t *testing.T) {
		sig := New()
		count := 0

		conn := sig.Connect(func() { count++ }, Once())
		conn.Block()

		sig.Emit()
		assert.Equal(t, 0, count)
		assert.True(t, conn.Connected())

		conn.Unblock()
		sig.Emit()
		assert.Equal(t, 1, count)
	})
}
