// Package pairly provides a heterogeneous vector fixed to an ordered set of
// declared element types, together with a pairwise dispatch engine.
// Elements are partitioned into per-type buckets preserving insertion order;
// Dispatch enumerates every unordered pair of stored elements (same-type and
// cross-type) and invokes a caller-supplied behaviour policy for each pair,
// resolving an exact type-pair handler when one is registered and a silent
// fallback otherwise.
package pairly
