// SPDX-License-Identifier: MIT

// Package rng: resolver and the shared default source.
package rng

import (
	"math/rand"
	"sync"
)

// defaultMu guards the handle swap only — it does NOT serialize draws from
// the returned source. Concurrent callers sharing the default source observe
// non-deterministic interleaving of draws; supply explicit sources when
// determinism or isolation is required.
var defaultMu sync.RWMutex

// defaultSrc is the shared process-wide source handed out when no explicit
// specification is given. Injectable via SetDefault for deterministic tests.
var defaultSrc = rand.New(rand.NewSource(DefaultSeed))

// New resolves a seed specification into a usable *rand.Rand.
// Implementation:
//   - Stage 1: Apply options in order onto an empty config (last one wins).
//   - Stage 2: A resolved source is returned as-is; otherwise fall through
//     to the shared default.
//
// Behavior highlights:
//   - New()                      → the shared default source.
//   - New(WithSeed(42))          → a fresh source; reproducible across calls
//     with the same seed.
//   - New(WithSource(r))         → r itself, identity-preserved.
//   - New(WithSource(nil))       → the shared default (lenient fall-through).
//
// Returns:
//   - *rand.Rand: never nil.
//
// Errors:
//   - None. The resolver is a convenience, not a validator.
//
// Complexity:
//   - O(len(opts)).
func New(opts ...Option) *rand.Rand {
	// Stage 1 (Apply): fold the options; the last effective one wins.
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 2 (Resolve): explicit specification or the shared default.
	if cfg.src != nil {
		return cfg.src
	}
	return Default()
}

// Default returns the shared process-wide source.
// Complexity: O(1); takes a read lock for the handle only.
func Default() *rand.Rand {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSrc
}

// SetDefault swaps the shared default source and returns the previous one,
// so tests can restore it. A nil src is ignored and the current default is
// returned unchanged (the default must never be nil).
// Complexity: O(1).
func SetDefault(src *rand.Rand) *rand.Rand {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultSrc
	if src != nil {
		defaultSrc = src
	}
	return prev
}
