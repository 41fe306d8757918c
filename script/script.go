// Package script evaluates Starlark expressions into machine input.
//
// An input expression is any Starlark expression that evaluates to a
// string, bytes, an int in [0, 255], or a list or tuple of those:
//
//	"Codewars" + NUL
//	bytes([8, 9])
//	[ord("a"), 10, EOF]
package script

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predeclared names available to every expression.
var Predeclared = starlark.StringDict{
	"NUL": starlark.String("\x00"), // Sentinel for zero terminated echo.
	"EOF": starlark.String("\xff"), // Sentinel for 0xff terminated echo.
}

// Eval evaluates an expression and returns its bytes.
func Eval(expr string) (data []byte, err error) {
	thread := starlark.Thread{Name: "input"}
	opts := syntax.FileOptions{}

	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "input", prog, Predeclared)
	if err != nil {
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}

	data, err = appendValue(nil, rc, expr, true)
	return
}

// appendValue appends the bytes of a Starlark value. Lists and tuples are
// only permitted at the top level.
func appendValue(data []byte, value starlark.Value, expr string, top bool) ([]byte, error) {
	switch v := value.(type) {
	case starlark.String:
		return append(data, string(v)...), nil
	case starlark.Bytes:
		return append(data, string(v)...), nil
	case starlark.Int:
		i64, ok := v.Int64()
		if !ok || i64 < 0 || i64 > 0xff {
			if !ok {
				i64 = -1
			}
			return nil, ErrByteRange(i64)
		}
		return append(data, byte(i64)), nil
	case starlark.Indexable:
		if !top {
			break
		}
		for n := range v.Len() {
			var err error
			data, err = appendValue(data, v.Index(n), expr, false)
			if err != nil {
				return nil, err
			}
		}
		return data, nil
	}

	return nil, ErrExpression(expr)
}
