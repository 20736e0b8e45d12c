// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow when
// converting between different bit-width integer types, chiefly turning
// int64 file sizes and offsets into the int lengths the mapping syscalls
// take (the conversion that actually fails on 32-bit platforms).
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, offsets within an already-mapped segment), use direct type casts
// instead to avoid overhead.
package conv
