// result.go
//
// Result is the single contract every execution path returns through:
// script value, accumulated print output, and any errors. There is no
// separate "did it succeed" boolean — Errors being empty is success (§3).
package kodiscript

// Result is what a run produces: the value the program evaluated to (or
// Null if it failed before producing one), every line the program printed
// in order, and any errors encountered.
type Result struct {
	Value  Value
	Output []string
	Errors []string
}

// OK reports whether the run completed without error.
func (r Result) OK() bool { return len(r.Errors) == 0 }
