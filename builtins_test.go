package kodiscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func evalExprValue(t *testing.T, src string) Value {
	t.Helper()
	res := runSource(t, src+";")
	require.True(t, res.OK(), "errors: %v", res.Errors)
	return res.Value
}

func TestStringBuiltins(t *testing.T) {
	require.Equal(t, Str("HELLO"), evalExprValue(t, `toUpperCase("hello")`))
	require.Equal(t, Str("hello"), evalExprValue(t, `toLowerCase("HELLO")`))
	require.Equal(t, Number(5), evalExprValue(t, `length("hello")`))
	require.Equal(t, Str("ell"), evalExprValue(t, `substring("hello", 1, 4)`))
	require.Equal(t, Str("hxllo"), evalExprValue(t, `replace("hello", "e", "x")`))
	require.Equal(t, BoolVal(true), evalExprValue(t, `contains("hello", "ell")`))
	require.Equal(t, BoolVal(true), evalExprValue(t, `startsWith("hello", "he")`))
	require.Equal(t, BoolVal(true), evalExprValue(t, `endsWith("hello", "lo")`))
}

func TestIndexOfDoesNotReplicateSourceBug(t *testing.T) {
	// Match at position 0 must return 0, not -1.
	require.Equal(t, Number(0), evalExprValue(t, `indexOf("hello", "h")`))
	require.Equal(t, Number(2), evalExprValue(t, `indexOf("hello", "l")`))
	require.Equal(t, Number(-1), evalExprValue(t, `indexOf("hello", "z")`))
}

func TestPadBuiltins(t *testing.T) {
	require.Equal(t, Str("  42"), evalExprValue(t, `padLeft("42", 4)`))
	require.Equal(t, Str("42  "), evalExprValue(t, `padRight("42", 4)`))
}

func TestMathBuiltins(t *testing.T) {
	require.Equal(t, Number(4), evalExprValue(t, `abs(-4)`))
	require.Equal(t, Number(3), evalExprValue(t, `floor(3.9)`))
	require.Equal(t, Number(4), evalExprValue(t, `ceil(3.1)`))
	require.Equal(t, Number(8), evalExprValue(t, `pow(2, 3)`))
	require.Equal(t, Number(2), evalExprValue(t, `min(2, 5, 9)`))
	require.Equal(t, Number(9), evalExprValue(t, `max(2, 5, 9)`))
	require.Equal(t, Number(3), evalExprValue(t, `sqrt(9)`))
}

func TestArrayBuiltins(t *testing.T) {
	require.Equal(t, Number(3), evalExprValue(t, `size([1, 2, 3])`))
	require.Equal(t, Number(1), evalExprValue(t, `first([1, 2, 3])`))
	require.Equal(t, Number(3), evalExprValue(t, `last([1, 2, 3])`))
	require.Equal(t, Array([]Value{Number(3), Number(2), Number(1)}), evalExprValue(t, `reverse([1, 2, 3])`))
	require.Equal(t, Array([]Value{Number(1), Number(2)}), evalExprValue(t, `slice([1, 2, 3], 0, 2)`))
	require.Equal(t, Array([]Value{Number(1), Number(2), Number(3)}), evalExprValue(t, `sort([3, 1, 2])`))
}

func TestArrayHigherOrderBuiltins(t *testing.T) {
	require.Equal(t,
		Array([]Value{Number(2), Number(4), Number(6)}),
		evalExprValue(t, `map([1, 2, 3], fn(x) { return x * 2; })`),
	)
	require.Equal(t,
		Array([]Value{Number(2), Number(4)}),
		evalExprValue(t, `filter([1, 2, 3, 4], fn(x) { return x % 2 == 0; })`),
	)
	require.Equal(t, Number(10), evalExprValue(t, `reduce([1, 2, 3, 4], fn(acc, x) { return acc + x; }, 0)`))
	require.Equal(t, Number(3), evalExprValue(t, `find([1, 2, 3, 4], fn(x) { return x > 2; })`))
	require.Equal(t, Number(2), evalExprValue(t, `findIndex([1, 2, 3, 4], fn(x) { return x > 2; })`))
}

func TestTypeBuiltins(t *testing.T) {
	require.Equal(t, Str("number"), evalExprValue(t, `typeOf(1)`))
	require.Equal(t, Str("string"), evalExprValue(t, `typeOf("s")`))
	require.Equal(t, BoolVal(true), evalExprValue(t, `isNull(null)`))
	require.Equal(t, BoolVal(false), evalExprValue(t, `isNumber("s")`))
}

func TestJSONRoundTrip(t *testing.T) {
	res := runSource(t, `jsonStringify(jsonParse("{\"a\":1,\"b\":[1,2,3]}"));`)
	require.True(t, res.OK())
	require.Equal(t, KindString, res.Value.Kind)
}

func TestCryptoBuiltinsProduceHexDigests(t *testing.T) {
	v := evalExprValue(t, `sha256("hello")`)
	require.Equal(t, KindString, v.Kind)
	require.Len(t, v.Data.(string), 64)
}

func TestEncodingBuiltinsRoundTrip(t *testing.T) {
	require.Equal(t, Str("hello world"), evalExprValue(t, `base64Decode(base64Encode("hello world"))`))
	require.Equal(t, Str("a b"), evalExprValue(t, `urlDecode(urlEncode("a b"))`))
}

func TestRandomUUIDShapeAndBounds(t *testing.T) {
	v := evalExprValue(t, `randomUUID()`)
	require.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, v.Data.(string))

	n := evalExprValue(t, `randomInt(10, 10)`)
	require.Equal(t, Number(10), n)
}

func TestRandomIntUpperBoundIsInclusive(t *testing.T) {
	old := randomFloatFn
	defer func() { randomFloatFn = old }()

	// A draw arbitrarily close to (but under) 1 must still be able to
	// produce hi, not just hi-1.
	randomFloatFn = func() float64 { return 0.999999999 }
	require.Equal(t, Number(6), evalExprValue(t, `randomInt(1, 6)`))

	randomFloatFn = func() float64 { return 0 }
	require.Equal(t, Number(1), evalExprValue(t, `randomInt(1, 6)`))
}

func TestDateTimeBuiltins(t *testing.T) {
	require.Equal(t, Number(2024), evalExprValue(t, `year(date(2024, 3, 15))`))
	require.Equal(t, Number(3), evalExprValue(t, `month(date(2024, 3, 15))`))
	require.Equal(t, Number(15), evalExprValue(t, `day(date(2024, 3, 15))`))
	require.Equal(t, Number(1), evalExprValue(t, `diffDays(date(2024, 3, 16), date(2024, 3, 15))`))
	require.Equal(t, Number(16), evalExprValue(t, `day(addDays(date(2024, 3, 15), 1))`))
}
