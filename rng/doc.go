// Package rng resolves seed specifications into usable *rand.Rand sources.
//
// The rng package provides:
//
//   - New, which maps a seed specification (functional options) onto a
//     pseudo-random source: an explicit seed yields a fresh reproducible
//     source, an existing source passes through unchanged (identity), and no
//     specification falls back to the shared process-wide default.
//   - Default / SetDefault, the injectable process-wide default source, so
//     deterministic tests can swap in a seeded instance instead of relying
//     on shared global state.
//
// The resolver is a convenience, not a validator: an absent or cleared
// specification silently falls through to the default source.
//
// The shared default source is NOT safe for concurrent draws; callers that
// need determinism or isolation must supply their own source via WithSeed or
// WithSource, exactly as they would for reproducible resampling schemes.
package rng
