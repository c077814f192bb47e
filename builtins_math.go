// builtins_math.go
//
// Math built-ins (§4.6): thin wrappers over the standard math package. No
// third-party numerics library appears anywhere in the retrieved pack, so
// this file is one of the few that leans on the standard library directly.
package kodiscript

import "math"

func registerMathBuiltins(register func(string, BuiltinFunc)) {
	unary := func(name string, fn func(float64) float64) {
		register(name, func(args []Value, _ Applier) (Value, error) {
			return Number(fn(toNumber(arg(args, 0)))), nil
		})
	}

	unary("abs", math.Abs)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("round", math.Round)
	unary("sqrt", math.Sqrt)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("log", math.Log)
	unary("log10", math.Log10)
	unary("exp", math.Exp)

	register("pow", func(args []Value, _ Applier) (Value, error) {
		return Number(math.Pow(toNumber(arg(args, 0)), toNumber(arg(args, 1)))), nil
	})
	register("min", func(args []Value, _ Applier) (Value, error) {
		return foldNumbers(args, math.Min)
	})
	register("max", func(args []Value, _ Applier) (Value, error) {
		return foldNumbers(args, math.Max)
	})
}

func foldNumbers(args []Value, pick func(a, b float64) float64) (Value, error) {
	if len(args) == 0 {
		return Null, runtimeErrorf("expected at least one argument")
	}
	result := toNumber(args[0])
	for _, a := range args[1:] {
		result = pick(result, toNumber(a))
	}
	return Number(result), nil
}
