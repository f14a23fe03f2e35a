package fabric

type options struct {
	progress func(int)
}

type Option func(*options)

// WithProgress is called with 1 after each accumulated claim.
func WithProgress(progress func(int)) Option {
	return func(o *options) {
		o.progress = progress
	}
}
