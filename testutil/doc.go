// Package testutil provides testing utilities for mapline.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source, generators for
// newline-delimited text fixtures, and a reference line splitter used
// as the oracle in round-trip tests.
//
// # Deterministic Fixtures
//
//	rng := testutil.NewRNG(seed)
//	data := rng.TextFile(1000, 0, 120, true) // 1000 lines, trailing '\n'
//	edges := rng.EdgeLines(500, 99, false)   // "u v" records
//
// # Reference Splitting
//
//	want := testutil.SplitLines(data)
package testutil
