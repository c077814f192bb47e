// builtins.go
//
// Assembles the built-in registry (§4.6). Most built-ins are pure functions
// of their arguments and are built once as a package-level table; "print"
// is the one built-in with a run-scoped side effect (it appends to the
// Result's output buffer), so it is bound fresh per Evaluator over a
// pointer to that run's output slice, matching §5's allowance that the
// built-in registry may be a per-process singleton or constructed per run.
package kodiscript

var pureBuiltins map[string]*Builtin

func init() {
	pureBuiltins = map[string]*Builtin{}
	register := func(name string, fn BuiltinFunc) { pureBuiltins[name] = &Builtin{Name: name, Fn: fn} }

	registerStringBuiltins(register)
	registerMathBuiltins(register)
	registerRandomBuiltins(register)
	registerTypeBuiltins(register)
	registerArrayBuiltins(register)
	registerJSONBuiltins(register)
	registerEncodingBuiltins(register)
	registerCryptoBuiltins(register)
	registerDateTimeBuiltins(register)
}

// newBuiltinRegistry returns the full built-in table for one run, with
// "print" bound to that run's output buffer.
func newBuiltinRegistry(output *[]string) map[string]*Builtin {
	reg := make(map[string]*Builtin, len(pureBuiltins)+1)
	for name, b := range pureBuiltins {
		reg[name] = b
	}
	reg["print"] = &Builtin{Name: "print", Fn: func(args []Value, _ Applier) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = Stringify(a)
		}
		*output = append(*output, joinSpace(parts))
		return Null, nil
	}}
	return reg
}

func joinSpace(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
