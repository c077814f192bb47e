// errors.go
//
// RuntimeError and the (optional) caret-snippet formatter hosts can use to
// render a LexError/ParseError against the original source. Grounded on the
// teacher's WrapErrorWithSource, simplified: runtime errors carry no source
// position (§4.3 — the AST carries no location beyond what the parser
// already consumed from tokens), so only lexical and parse errors get a
// caret snippet.
package kodiscript

import (
	"fmt"
	"strings"
)

// RuntimeError is every resolution, type, arithmetic, and host-function
// error (§7); limit errors are *limitError (limits.go). It carries only a
// message: evaluator errors reference semantic conditions, not source
// positions.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

func runtimeErrorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

// FormatError renders a *LexError or *ParseError as a caret-annotated
// snippet of src, in the style:
//
//	LEXICAL ERROR at 3:1: unexpected character '@'
//
//	   2 | let x = 1
//	   3 | @ bad
//	     | ^
//	   4 | let y = 2
//
// Any other error (including *RuntimeError) is returned as a plain message
// via err.Error(), since it carries no position to render.
func FormatError(err error, src string) string {
	switch e := err.(type) {
	case *LexError:
		return prettySnippet("LEXICAL ERROR", src, e.Line, e.Col, e.Msg)
	case *ParseError:
		return prettySnippet("PARSE ERROR", src, e.Line, 1, e.Error())
	default:
		return err.Error()
	}
}

func prettySnippet(header, src string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
