package pairly

import "reflect"

type (
	//Handler handles a pair of elements
	Handler func(a, b interface{})

	pair struct {
		first  reflect.Type
		second reflect.Type
	}

	//Policy represents a pairwise behaviour policy: an explicit registry of
	//exact (first, second) type pair handlers with a designated fallback.
	//Resolution prefers the exact entry; a missing entry falls back silently.
	Policy struct {
		exact    map[pair]Handler
		fallback Handler
	}

	//PolicyOption represents policy option
	PolicyOption func(p *Policy)
)

// NewPolicy creates a policy; unless overridden the fallback is a no-op
func NewPolicy(opts ...PolicyOption) *Policy {
	var result = &Policy{
		exact:    make(map[pair]Handler),
		fallback: func(a, b interface{}) {},
	}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Handle resolves and invokes the handler for supplied pair
func (p *Policy) Handle(a, b interface{}) {
	key := pair{first: reflect.TypeOf(a), second: reflect.TypeOf(b)}
	if handler, ok := p.exact[key]; ok {
		handler(a, b)
		return
	}
	p.fallback(a, b)
}

// WithFallback returns policy option overriding the fallback handler
func WithFallback(handler Handler) PolicyOption {
	return func(p *Policy) {
		p.fallback = handler
	}
}

// WithPairHandler returns policy option registering an exact handler for the
// ordered (first, second) type pair
func WithPairHandler(first, second reflect.Type, handler Handler) PolicyOption {
	return func(p *Policy) {
		p.exact[pair{first: first, second: second}] = handler
	}
}

// On returns policy option registering a typed exact handler for the ordered
// (A, B) pair
func On[A, B any](fn func(a A, b B)) PolicyOption {
	return WithPairHandler(TypeOf[A](), TypeOf[B](), func(a, b interface{}) {
		fn(a.(A), b.(B))
	})
}
