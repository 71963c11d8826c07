package catalog

import "sync"

// Gate is the two-state access lock in front of the catalog. It starts
// Locked when a password is configured at process start and Unlocked
// otherwise. A successful unlock is permanent for the running session;
// re-locking only happens on restart while a password is still set.
//
// The unlock state is held in memory only and is never persisted.
type Gate struct {
	mu       sync.RWMutex
	unlocked bool
	password func() string
}

// NewGate creates a gate over the current password source. The source
// is consulted on every attempt, so a password changed mid-session is
// honored by later attempts without reseeding the gate.
func NewGate(password func() string) *Gate {
	return &Gate{
		unlocked: password() == "",
		password: password,
	}
}

// Unlocked reports whether catalog contents are observable.
func (g *Gate) Unlocked() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.unlocked
}

// AttemptUnlock fires the Locked -> Unlocked transition when the
// candidate equals the configured password exactly (case-sensitive).
// Failed attempts leave the gate locked and may be repeated without
// limit; there is no lockout or backoff policy.
func (g *Gate) AttemptUnlock(candidate string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unlocked {
		return true
	}
	if candidate == g.password() {
		g.unlocked = true
		return true
	}
	return false
}
