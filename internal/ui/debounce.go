package ui

import (
	"sync"
	"time"
)

// KeyDebouncer keeps held-down keys from flooding the list views.
type KeyDebouncer struct {
	mu              sync.Mutex
	lastKeyTime     map[string]time.Time
	consecutiveKeys map[string]int
	repeatDelay     time.Duration
	initialDelay    time.Duration
	resetAfter      time.Duration
	now             func() time.Time
}

// NewKeyDebouncer creates a new key debouncer.
func NewKeyDebouncer() *KeyDebouncer {
	return &KeyDebouncer{
		lastKeyTime:     make(map[string]time.Time),
		consecutiveKeys: make(map[string]int),
		repeatDelay:     50 * time.Millisecond,  // Minimum time between repeated keys
		initialDelay:    300 * time.Millisecond, // Initial delay before fast repeat
		resetAfter:      500 * time.Millisecond,
		now:             time.Now,
	}
}

// ShouldProcess returns true if the key event should be processed.
// The first presses of a key are spaced by the initial delay, a held key
// then repeats at the faster rate.
func (kd *KeyDebouncer) ShouldProcess(key string) bool {
	kd.mu.Lock()
	defer kd.mu.Unlock()

	now := kd.now()
	lastTime, exists := kd.lastKeyTime[key]
	if !exists || now.Sub(lastTime) > kd.resetAfter {
		kd.lastKeyTime[key] = now
		kd.consecutiveKeys[key] = 1
		return true
	}

	requiredDelay := kd.repeatDelay
	if kd.consecutiveKeys[key] < 3 {
		requiredDelay = kd.initialDelay
	}

	if now.Sub(lastTime) >= requiredDelay {
		kd.consecutiveKeys[key]++
		kd.lastKeyTime[key] = now
		return true
	}

	return false
}

// Once accepts key at most once per window, however long it is held.
func (kd *KeyDebouncer) Once(key string, window time.Duration) bool {
	kd.mu.Lock()
	defer kd.mu.Unlock()

	now := kd.now()
	if last, ok := kd.lastKeyTime[key]; ok && now.Sub(last) < window {
		return false
	}
	kd.lastKeyTime[key] = now
	return true
}
