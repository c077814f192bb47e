package kodiscript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string) Result {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	ev := NewEvaluator(nil, nil, Limits{}, nil)
	return ev.Run(prog)
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	res := runSource(t, `2 + 3 * 4;`)
	require.True(t, res.OK())
	require.Equal(t, Number(14), res.Value)
}

func TestEvalFactorialRecursion(t *testing.T) {
	res := runSource(t, `
		let factorial = fn(n) {
			if (n <= 1) { return 1; }
			return n * factorial(n - 1);
		};
		factorial(5);
	`)
	require.True(t, res.OK())
	require.Equal(t, Number(120), res.Value)
}

func TestEvalTriangularSumRecursionProperty(t *testing.T) {
	res := runSource(t, `
		let sum = fn(k) {
			if (k <= 0) { return 0; }
			return k + sum(k - 1);
		};
		sum(10);
	`)
	require.True(t, res.OK())
	require.Equal(t, Number(55), res.Value)
}

func TestEvalSafeMemberOnNull(t *testing.T) {
	res := runSource(t, `
		let obj = null;
		obj?.field;
	`)
	require.True(t, res.OK())
	require.Equal(t, Null, res.Value)
}

func TestEvalElvisFallback(t *testing.T) {
	res := runSource(t, `let x = null; x ?: 42;`)
	require.True(t, res.OK())
	require.Equal(t, Number(42), res.Value)
}

func TestEvalDivisionByZeroIsRuntimeError(t *testing.T) {
	res := runSource(t, `1 / 0;`)
	require.False(t, res.OK())
	require.Contains(t, res.Errors[0], "division by zero")
}

func TestEvalClosureCapturesSurroundingBindings(t *testing.T) {
	res := runSource(t, `
		let makeAdder = fn(n) {
			return fn(x) { return x + n; };
		};
		let add5 = makeAdder(5);
		add5(10);
	`)
	require.True(t, res.OK())
	require.Equal(t, Number(15), res.Value)
}

func TestEvalForInOverArray(t *testing.T) {
	res := runSource(t, `
		let total = 0;
		for (n in [1, 2, 3, 4]) {
			total = total + n;
		}
		total;
	`)
	require.True(t, res.OK())
	require.Equal(t, Number(10), res.Value)
}

func TestEvalMaxOperationsTerminatesLoop(t *testing.T) {
	prog, err := Parse(`
		let i = 0;
		while (true) {
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	ev := NewEvaluator(nil, nil, Limits{MaxOperations: 50}, nil)
	res := ev.Run(prog)
	require.False(t, res.OK())
	require.Contains(t, res.Errors[0], "max operations exceeded")
}

func TestEvalTimeoutTerminatesLoop(t *testing.T) {
	prog, err := Parse(`while (true) {}`)
	require.NoError(t, err)
	ev := NewEvaluator(nil, nil, Limits{Deadline: timeNow().Add(-time.Millisecond)}, nil)
	res := ev.Run(prog)
	require.False(t, res.OK())
	require.Contains(t, res.Errors[0], "execution timeout")
}

func TestEvalHostFunctionBridge(t *testing.T) {
	prog, err := Parse(`greet("world");`)
	require.NoError(t, err)
	host := map[string]HostFunc{
		"greet": func(args []Value) (Value, error) {
			return Str("hello, " + Stringify(args[0])), nil
		},
	}
	ev := NewEvaluator(nil, host, Limits{}, nil)
	res := ev.Run(prog)
	require.True(t, res.OK())
	require.Equal(t, Str("hello, world"), res.Value)
}

func TestEvalPrintAccumulatesOutput(t *testing.T) {
	res := runSource(t, `print("a", 1, true);`)
	require.True(t, res.OK())
	require.Equal(t, []string{"a 1 true"}, res.Output)
}

func TestEvalObjectLiteralAndIndexing(t *testing.T) {
	res := runSource(t, `
		let point = {x: 1, y: 2};
		point["x"] + point.y;
	`)
	require.True(t, res.OK())
	require.Equal(t, Number(3), res.Value)
}
