package stream

// BuildOption configures Builder behavior.
type BuildOption func(*buildOpts)

type buildOpts struct {
	resolve   bool // replace aliases with copies of their anchors
	mergeKeys bool // expand "<<" merge keys; only with resolve
}

// BuildResolve enables alias resolution.
func BuildResolve(v bool) BuildOption {
	return func(opts *buildOpts) {
		opts.resolve = v
	}
}

// BuildMergeKeys controls merge key expansion while resolving. It is on by
// default.
func BuildMergeKeys(v bool) BuildOption {
	return func(opts *buildOpts) {
		opts.mergeKeys = v
	}
}
