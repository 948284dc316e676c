// Package toolpath finds a runnable copy of an external tool such as cargo
// or rustc.
//
// Three places are checked, in order:
//  1. The override variable, the upper-cased tool name ($CARGO, $RUSTC, ...).
//     If it is set but not runnable, resolution fails right there.
//  2. The bare tool name, located through $PATH by the OS.
//  3. ~/.cargo/bin/<name>.
//
// A candidate is runnable if `<candidate> --version` can be launched and runs
// to completion. The exit status is not inspected. Every check spawns a real
// process and nothing is cached.
package toolpath

import (
	"os"
	"path/filepath"

	"github.com/victorarias/toolpath/internal/logging"
	"github.com/victorarias/toolpath/internal/pathutil"
)

// Source identifies which lookup step produced a Result.
type Source int

const (
	SourceOverride Source = iota + 1
	SourcePath
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourcePath:
		return "path"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is a validated executable location.
type Result struct {
	Name   string
	Path   string
	Source Source
	Var    string
}

// Resolver holds the capabilities resolution depends on. The zero value is
// not usable; build one with New.
type Resolver struct {
	launcher  Launcher
	lookupEnv func(string) (string, bool)
	homeDir   func() (string, error)
	logger    *logging.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLauncher replaces the process launcher used for validation.
func WithLauncher(l Launcher) Option {
	return func(r *Resolver) { r.launcher = l }
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(r *Resolver) { r.lookupEnv = fn }
}

// WithHomeDir replaces os.UserHomeDir.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Resolver) { r.homeDir = fn }
}

// WithLogger sets the logger probes are reported to.
func WithLogger(l *logging.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// New returns a Resolver backed by the real environment unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		launcher:  ExecLauncher{},
		lookupEnv: os.LookupEnv,
		homeDir:   os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Resolve returns a runnable path for name using the process environment.
func Resolve(name string) (string, error) {
	return defaultResolver.Resolve(name)
}

// Resolve returns a runnable path for name. The result is the override value
// verbatim, the bare name, or the full fallback path.
func (r *Resolver) Resolve(name string) (string, error) {
	res, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	return res.Path, nil
}

// Lookup is Resolve, also reporting where the path came from.
func (r *Resolver) Lookup(name string) (Result, error) {
	envVar := OverrideVar(name)

	if value, ok := r.lookupEnv(envVar); ok {
		if r.IsValidExecutable(value) {
			r.logger.Debugf("%s: using $%s=%s", name, envVar, value)
			return Result{Name: name, Path: value, Source: SourceOverride, Var: envVar}, nil
		}
		r.logger.Errorf("%s: $%s=%q is not a valid executable", name, envVar, value)
		return Result{}, &OverrideError{Name: name, Var: envVar, Value: value}
	}

	if r.IsValidExecutable(name) {
		r.logger.Debugf("%s: found on PATH", name)
		return Result{Name: name, Path: name, Source: SourcePath, Var: envVar}, nil
	}

	if home, err := r.homeDir(); err == nil && home != "" {
		candidate := FallbackPath(home, name)
		if r.IsValidExecutable(candidate) {
			r.logger.Debugf("%s: using fallback %s", name, candidate)
			return Result{Name: name, Path: candidate, Source: SourceFallback, Var: envVar}, nil
		}
	} else {
		r.logger.Debugf("%s: no home directory, skipping fallback: %v", name, err)
	}

	return Result{}, &NotFoundError{Name: name, Var: envVar}
}

// IsValidExecutable runs `candidate --version` once and reports whether it
// launched and ran to completion.
func (r *Resolver) IsValidExecutable(candidate string) bool {
	err := r.launcher.Launch(candidate, VersionFlag)
	ok := launched(err)
	if ok {
		r.logger.Debugf("probe %s %s: ok", candidate, VersionFlag)
	} else {
		r.logger.Debugf("probe %s %s: %v", candidate, VersionFlag, err)
	}
	return ok
}

// FallbackPath is <home>/.cargo/bin/<name>.
func FallbackPath(home, name string) string {
	return filepath.Join(pathutil.CargoBinDir(home), name)
}

// OverrideVar derives the override variable for name by upper-casing ASCII
// letters. Nothing else is changed, so "rust-analyzer" maps to
// "RUST-ANALYZER".
func OverrideVar(name string) string {
	b := []byte(name)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
