// builder.go
//
// The host-embedding surface (§6). Three ways in, from simplest to most
// configurable:
//
//	Eval(src)                          -> (Value, error), for one-shot use
//	RunWithVars(src, vars)             -> Result, never returns a Go error
//	                                       for script failures (they land in
//	                                       Result.Errors)
//	New().Var(...).Func(...).Execute() -> Result, full control over the host
//	                                       bridge, limits, and logging
package kodiscript

import (
	"time"

	"go.uber.org/zap"
)

// Eval parses and runs src with no host variables or functions and no
// execution limits other than those set by directive comments in src (see
// Builder.Execute). It returns the program's value, or an error if lexing,
// parsing, or evaluation failed.
func Eval(src string) (Value, error) {
	res := New().Source(src).Execute()
	if !res.OK() {
		return Null, runtimeErrorf("%s", res.Errors[0])
	}
	return res.Value, nil
}

// RunWithVars parses and runs src with the given variables seeded into the
// initial scope, and always returns a full Result rather than a Go error.
func RunWithVars(src string, vars map[string]Value) Result {
	return New().Source(src).Vars(vars).Execute()
}

// Builder assembles one execution: source, host variables, host functions,
// limits, and a logger. Every setter returns the Builder so calls chain.
type Builder struct {
	src     string
	vars    map[string]Value
	host    map[string]HostFunc
	limits  Limits
	logger  *zap.Logger
	timeout time.Duration
}

// New starts a fresh Builder with no source, no host bindings, and no
// limits.
func New() *Builder {
	return &Builder{
		vars: make(map[string]Value),
		host: make(map[string]HostFunc),
	}
}

// Source sets the program text to run.
func (b *Builder) Source(src string) *Builder {
	b.src = src
	return b
}

// Var binds a single host variable, visible to the script under name.
func (b *Builder) Var(name string, v Value) *Builder {
	b.vars[name] = v
	return b
}

// Vars merges a whole map of host variables at once.
func (b *Builder) Vars(vars map[string]Value) *Builder {
	for k, v := range vars {
		b.vars[k] = v
	}
	return b
}

// Func registers a host function, callable from the script by name (§3's
// second name-resolution tier).
func (b *Builder) Func(name string, fn HostFunc) *Builder {
	b.host[name] = fn
	return b
}

// MaxOperations bounds the number of AST nodes the run may evaluate before
// it is aborted with a limit error (§4.7). Zero leaves the bound to a
// maxOps directive comment in the source, and disables it if there is none.
func (b *Builder) MaxOperations(n int) *Builder {
	b.limits.MaxOperations = n
	return b
}

// Timeout bounds the wall-clock duration the run may take before it is
// aborted with a limit error (§4.7). Zero leaves the bound to a timeoutMs
// directive comment in the source, and disables it if there is none.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.timeout = d
	return b
}

// Logger attaches a structured logger for diagnostic output; the logger
// never affects Result, only what gets written to the log sink (§10.1).
func (b *Builder) Logger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// Execute lexes, parses, and evaluates the configured source, applying any
// directive comments (§10.3) as defaults that explicit Builder calls
// override, and returns the full Result.
func (b *Builder) Execute() Result {
	directives := parseDirectives(b.src)
	limits := b.limits
	if limits.MaxOperations == 0 && directives.MaxOperations > 0 {
		limits.MaxOperations = directives.MaxOperations
	}
	timeout := b.timeout
	if timeout == 0 && directives.Timeout > 0 {
		timeout = directives.Timeout
	}
	if timeout > 0 {
		limits.Deadline = timeNow().Add(timeout)
	}

	prog, err := Parse(b.src)
	if err != nil {
		return Result{Value: Null, Errors: []string{err.Error()}}
	}

	ev := NewEvaluator(b.vars, b.host, limits, b.logger)
	return ev.Run(prog)
}
