package voxact

// Option adjusts a single Execute call.
type Option func(*callOptions)

// callOptions holds per-call configuration applied via Option functions.
type callOptions struct {
	workingDir string
	env        []string
}

// mergeCallOptions applies per-call Option functions and returns the result.
func mergeCallOptions(opts ...Option) *callOptions {
	co := &callOptions{}
	for _, opt := range opts {
		opt(co)
	}
	return co
}

// WithWorkingDir runs the script from dir instead of the work directory.
func WithWorkingDir(dir string) Option {
	return func(o *callOptions) {
		o.workingDir = dir
	}
}

// WithEnv adds environment variables for a single call.
// Each entry should be in "KEY=VALUE" format.
func WithEnv(env ...string) Option {
	cpy := append([]string(nil), env...)
	return func(o *callOptions) {
		o.env = append(o.env, cpy...)
	}
}
