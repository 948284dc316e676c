package toolpath

// Check is the outcome of resolving one tool.
type Check struct {
	Name   string
	Result Result
	Err    error
}

// OK reports whether the tool resolved.
func (c Check) OK() bool { return c.Err == nil }

// CheckAll resolves each name in order. Failures are recorded, not returned.
func (r *Resolver) CheckAll(names []string) []Check {
	checks := make([]Check, 0, len(names))
	for _, name := range names {
		res, err := r.Lookup(name)
		checks = append(checks, Check{Name: name, Result: res, Err: err})
	}
	return checks
}
