// builtins_array.go
//
// Array built-ins (§4.6), including the higher-order functions that invoke
// a function-valued argument through the Applier bridge (see eval.go).
package kodiscript

import "sort"

func registerArrayBuiltins(register func(string, BuiltinFunc)) {
	register("size", func(args []Value, _ Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "size")
		if err != nil {
			return Null, err
		}
		return Number(float64(len(elems))), nil
	})
	register("first", func(args []Value, _ Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "first")
		if err != nil {
			return Null, err
		}
		if len(elems) == 0 {
			return Null, nil
		}
		return elems[0], nil
	})
	register("last", func(args []Value, _ Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "last")
		if err != nil {
			return Null, err
		}
		if len(elems) == 0 {
			return Null, nil
		}
		return elems[len(elems)-1], nil
	})
	register("reverse", func(args []Value, _ Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "reverse")
		if err != nil {
			return Null, err
		}
		out := make([]Value, len(elems))
		for i, v := range elems {
			out[len(elems)-1-i] = v
		}
		return Array(out), nil
	})
	register("slice", func(args []Value, _ Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "slice")
		if err != nil {
			return Null, err
		}
		start := clampIndex(int(toNumber(arg(args, 1))), len(elems))
		end := len(elems)
		if len(args) > 2 {
			end = clampIndex(int(toNumber(args[2])), len(elems))
		}
		if end < start {
			end = start
		}
		out := make([]Value, end-start)
		copy(out, elems[start:end])
		return Array(out), nil
	})
	register("sort", func(args []Value, _ Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "sort")
		if err != nil {
			return Null, err
		}
		desc := len(args) > 1 && Stringify(args[1]) == "desc"
		out := append([]Value(nil), elems...)
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return valueLess(out[j], out[i])
			}
			return valueLess(out[i], out[j])
		})
		return Array(out), nil
	})
	register("sortBy", func(args []Value, _ Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "sortBy")
		if err != nil {
			return Null, err
		}
		field, err := stringArg(args, 1, "sortBy")
		if err != nil {
			return Null, err
		}
		desc := len(args) > 2 && Stringify(args[2]) == "desc"
		out := append([]Value(nil), elems...)
		key := func(v Value) Value {
			if v.Kind != KindObject {
				return Null
			}
			k, _ := v.Data.(*ObjectValue).Get(field)
			return k
		}
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return valueLess(key(out[j]), key(out[i]))
			}
			return valueLess(key(out[i]), key(out[j]))
		})
		return Array(out), nil
	})
	register("filter", func(args []Value, apply Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "filter")
		if err != nil {
			return Null, err
		}
		fn := arg(args, 1)
		var out []Value
		for _, v := range elems {
			keep, err := apply(fn, []Value{v})
			if err != nil {
				return Null, err
			}
			if keep.Truthy() {
				out = append(out, v)
			}
		}
		return Array(out), nil
	})
	register("map", func(args []Value, apply Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "map")
		if err != nil {
			return Null, err
		}
		fn := arg(args, 1)
		out := make([]Value, len(elems))
		for i, v := range elems {
			r, err := apply(fn, []Value{v})
			if err != nil {
				return Null, err
			}
			out[i] = r
		}
		return Array(out), nil
	})
	register("reduce", func(args []Value, apply Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "reduce")
		if err != nil {
			return Null, err
		}
		fn := arg(args, 1)
		acc := arg(args, 2)
		for _, v := range elems {
			acc, err = apply(fn, []Value{acc, v})
			if err != nil {
				return Null, err
			}
		}
		return acc, nil
	})
	register("find", func(args []Value, apply Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "find")
		if err != nil {
			return Null, err
		}
		fn := arg(args, 1)
		for _, v := range elems {
			ok, err := apply(fn, []Value{v})
			if err != nil {
				return Null, err
			}
			if ok.Truthy() {
				return v, nil
			}
		}
		return Null, nil
	})
	register("findIndex", func(args []Value, apply Applier) (Value, error) {
		elems, err := arrayArg(args, 0, "findIndex")
		if err != nil {
			return Null, err
		}
		fn := arg(args, 1)
		for i, v := range elems {
			ok, err := apply(fn, []Value{v})
			if err != nil {
				return Null, err
			}
			if ok.Truthy() {
				return Number(float64(i)), nil
			}
		}
		return Number(-1), nil
	})
}

func arrayArg(args []Value, i int, fn string) ([]Value, error) {
	v := arg(args, i)
	if v.Kind != KindArray {
		return nil, argError(fn, "array", v)
	}
	return v.Data.(*ArrayValue).Elements, nil
}

// valueLess provides a total default ordering for "sort": numbers and
// strings compare natively, anything else falls back to comparing their
// stringified form so a mixed array still sorts deterministically.
func valueLess(a, b Value) bool {
	if a.Kind == KindNumber && b.Kind == KindNumber {
		return a.Data.(float64) < b.Data.(float64)
	}
	if a.Kind == KindString && b.Kind == KindString {
		return a.Data.(string) < b.Data.(string)
	}
	return Stringify(a) < Stringify(b)
}
