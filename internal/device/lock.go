package device

// Lock is a simulated smart lock. Its active condition is "unlocked", so the
// generic contract maps inversely onto the stored attribute: Activate
// unlocks, Deactivate locks.
type Lock struct {
	locked bool
}

// NewLock returns a lock in its default state: locked (fail-safe).
func NewLock() Lock {
	return Lock{locked: true}
}

// Activate unlocks the lock.
func (l *Lock) Activate() Status {
	l.locked = false
	return l.State()
}

// Deactivate locks the lock.
func (l *Lock) Deactivate() Status {
	l.locked = true
	return l.State()
}

// Locked reports whether the lock is locked.
func (l *Lock) Locked() bool {
	return l.locked
}

// State reports the lock's current condition. Active means unlocked.
func (l *Lock) State() Status {
	detail := "Smart Lock is UNLOCKED"
	if l.locked {
		detail = "Smart Lock is LOCKED"
	}
	return Status{Kind: KindLock, Active: !l.locked, Detail: detail}
}
