package pairly

type (
	options struct {
		values []interface{}
	}

	//Option represents vector option
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	var result = &options{}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// WithValues seeds a vector at construction; equivalent to inserting the
// supplied values in argument order.
func WithValues(values ...interface{}) Option {
	return func(o *options) {
		o.values = append(o.values, values...)
	}
}
