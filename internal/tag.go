package internal

import "sync/atomic"

// Tag is a named marker shared by every slot connected under the same
// tag name on one signal. Revoking it expires all of them at once.
type Tag struct {
	name    string
	revoked atomic.Bool
}

func (t *Tag) Name() string { return t.name }

// Expired implements Lifetime. A tag expires when its signal
// disconnects it by name; it never comes back.
func (t *Tag) Expired() bool { return t.revoked.Load() }
