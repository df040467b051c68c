// SPDX-License-Identifier: MIT

// Package rng: functional configuration for seed resolution. This file
// defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors mirroring the three seed specifications.
//
// Design goals:
//   - Tagged, type-safe specification instead of dynamic type dispatch:
//     the three cases (unseeded / integer seed / existing source) are three
//     distinct constructors, checked at compile time.
//   - Leniency preserved: a nil source in WithSource clears the
//     specification and falls through to the shared default, mirroring the
//     "unrecognized input → default" behavior of loosely-typed resolvers.
//   - Last-one-wins: when several options are supplied, the final one takes
//     effect (documented, deterministic).
package rng

import "math/rand"

// DefaultSeed seeds the process-wide default source on first use. The value
// itself is arbitrary; it only has to be fixed so that a fresh process is
// reproducible until someone injects a different default.
const DefaultSeed int64 = 1

// config carries the resolved specification across option application.
type config struct {
	src *rand.Rand // nil ⇒ fall through to the shared default
}

// Option mutates the seed-resolution config. Options are applied in order;
// the last effective option wins.
type Option func(*config)

// WithSeed requests a fresh source seeded with seed. Two resolutions with
// the same seed produce identical draw sequences.
// Complexity: O(1) here; source construction happens at resolution time.
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Construct eagerly: the seed fully determines the source.
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithSource requests that src be returned unchanged (identity). A nil src
// clears any earlier specification and falls through to the default source.
// Complexity: O(1).
func WithSource(src *rand.Rand) Option {
	return func(c *config) {
		c.src = src // nil clears ⇒ default branch
	}
}
