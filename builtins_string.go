// builtins_string.go
//
// String built-ins (§4.6). Case folding uses golang.org/x/text/cases for
// Unicode-correct mapping instead of byte-wise strings.ToUpper/ToLower.
package kodiscript

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func registerStringBuiltins(register func(string, BuiltinFunc)) {
	register("toString", func(args []Value, _ Applier) (Value, error) {
		return Str(Stringify(arg(args, 0))), nil
	})
	register("toNumber", func(args []Value, _ Applier) (Value, error) {
		v := arg(args, 0)
		if v.Kind == KindNumber {
			return v, nil
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(Stringify(v)), 64)
		if err != nil {
			return Null, nil
		}
		return Number(n), nil
	})
	register("length", func(args []Value, _ Applier) (Value, error) {
		v := arg(args, 0)
		switch v.Kind {
		case KindString:
			return Number(float64(len([]rune(v.Data.(string))))), nil
		case KindArray:
			return Number(float64(len(v.Data.(*ArrayValue).Elements))), nil
		default:
			return Null, argError("length", "string or array", v)
		}
	})
	register("substring", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "substring")
		if err != nil {
			return Null, err
		}
		runes := []rune(s)
		start := clampIndex(int(toNumber(arg(args, 1))), len(runes))
		end := len(runes)
		if len(args) > 2 {
			end = clampIndex(int(toNumber(args[2])), len(runes))
		}
		if end < start {
			end = start
		}
		return Str(string(runes[start:end])), nil
	})
	register("toUpperCase", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "toUpperCase")
		if err != nil {
			return Null, err
		}
		return Str(upperCaser.String(s)), nil
	})
	register("toLowerCase", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "toLowerCase")
		if err != nil {
			return Null, err
		}
		return Str(lowerCaser.String(s)), nil
	})
	register("trim", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "trim")
		if err != nil {
			return Null, err
		}
		return Str(strings.TrimSpace(s)), nil
	})
	register("replace", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "replace")
		if err != nil {
			return Null, err
		}
		old := Stringify(arg(args, 1))
		nw := Stringify(arg(args, 2))
		return Str(strings.ReplaceAll(s, old, nw)), nil
	})
	register("split", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "split")
		if err != nil {
			return Null, err
		}
		sep := Stringify(arg(args, 1))
		var parts []string
		if sep == "" {
			for _, r := range s {
				parts = append(parts, string(r))
			}
		} else {
			parts = strings.Split(s, sep)
		}
		elems := make([]Value, len(parts))
		for i, p := range parts {
			elems[i] = Str(p)
		}
		return Array(elems), nil
	})
	register("join", func(args []Value, _ Applier) (Value, error) {
		v := arg(args, 0)
		if v.Kind != KindArray {
			return Null, argError("join", "array", v)
		}
		sep := Stringify(arg(args, 1))
		elems := v.Data.(*ArrayValue).Elements
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = Stringify(e)
		}
		return Str(strings.Join(parts, sep)), nil
	})
	register("contains", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "contains")
		if err != nil {
			return Null, err
		}
		return BoolVal(strings.Contains(s, Stringify(arg(args, 1)))), nil
	})
	register("startsWith", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "startsWith")
		if err != nil {
			return Null, err
		}
		return BoolVal(strings.HasPrefix(s, Stringify(arg(args, 1)))), nil
	})
	register("endsWith", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "endsWith")
		if err != nil {
			return Null, err
		}
		return BoolVal(strings.HasSuffix(s, Stringify(arg(args, 1)))), nil
	})
	register("indexOf", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "indexOf")
		if err != nil {
			return Null, err
		}
		// Rune-indexed, and returns the real position (including 0) — see
		// spec.md §9's Open Question on the source's `?: -1` bug; we do not
		// replicate it.
		byteIdx := strings.Index(s, Stringify(arg(args, 1)))
		if byteIdx < 0 {
			return Number(-1), nil
		}
		return Number(float64(len([]rune(s[:byteIdx])))), nil
	})
	register("repeat", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "repeat")
		if err != nil {
			return Null, err
		}
		n := int(toNumber(arg(args, 1)))
		if n < 0 {
			n = 0
		}
		return Str(strings.Repeat(s, n)), nil
	})
	register("padLeft", func(args []Value, _ Applier) (Value, error) {
		return padString(args, true)
	})
	register("padRight", func(args []Value, _ Applier) (Value, error) {
		return padString(args, false)
	})
}

func padString(args []Value, left bool) (Value, error) {
	s, err := stringArg(args, 0, "pad")
	if err != nil {
		return Null, err
	}
	width := int(toNumber(arg(args, 1)))
	pad := " "
	if len(args) > 2 {
		pad = Stringify(args[2])
	}
	if pad == "" {
		return Str(s), nil
	}
	runes := []rune(s)
	needed := width - len(runes)
	if needed <= 0 {
		return Str(s), nil
	}
	var b strings.Builder
	padRunes := []rune(pad)
	for b.Len() < needed*4 && len([]rune(b.String())) < needed {
		b.WriteString(string(padRunes))
	}
	fill := []rune(b.String())[:needed]
	if left {
		return Str(string(fill) + s), nil
	}
	return Str(s + string(fill)), nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return i
}

func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return Null
}

func stringArg(args []Value, i int, fn string) (string, error) {
	v := arg(args, i)
	if v.Kind != KindString {
		return "", argError(fn, "string", v)
	}
	return v.Data.(string), nil
}

func argError(fn, want string, got Value) error {
	return runtimeErrorf("%s: expected %s, got %s", fn, want, got.TypeName())
}
