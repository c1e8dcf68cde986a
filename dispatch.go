package pairly

// Dispatch enumerates every unordered pair of stored elements exactly once
// and invokes the policy for each. Per bucket, in declaration order:
//
//  1. same-type pass: every (p, q) with p < q in insertion order yields one
//     invocation (element p, element q); the reverse order is never issued,
//     same-type interaction is symmetric by convention.
//  2. cross-type pass: every element is paired with every element of every
//     later bucket; both argument orders are issued, later-declared element
//     first, so a policy may specialize either order and let the other fall
//     through.
//
// Traversal is deterministic given declaration and insertion order. A nil
// policy behaves as fallback-only: the full traversal runs with no
// observable effect. Handlers must not mutate the vector under traversal.
func (v *Vector) Dispatch(policy *Policy) {
	if policy == nil {
		policy = NewPolicy()
	}
	for i, b := range v.buckets {
		count := b.len()
		for p := 0; p < count; p++ {
			for q := p + 1; q < count; q++ {
				policy.Handle(b.valueAt(p), b.valueAt(q))
			}
		}
		for p := 0; p < count; p++ {
			element := b.valueAt(p)
			for j := i + 1; j < len(v.buckets); j++ {
				other := v.buckets[j]
				otherCount := other.len()
				for q := 0; q < otherCount; q++ {
					candidate := other.valueAt(q)
					policy.Handle(candidate, element)
					policy.Handle(element, candidate)
				}
			}
		}
	}
}
