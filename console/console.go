//go:build js && wasm

package console

import (
	"fmt"
	"syscall/js"
)

func Log(args ...any) {
	console := js.Global().Get("console")
	console.Call("log", jsArgs(args)...)
}

func Warn(args ...any) {
	console := js.Global().Get("console")
	console.Call("warn", jsArgs(args)...)
}

func Error(args ...any) {
	console := js.Global().Get("console")
	console.Call("error", jsArgs(args)...)
}

// jsArgs converts args js.ValueOf cannot take (errors, structs) to strings.
func jsArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case nil, bool, string, int, int32, int64, uint, uint32, uint64, float32, float64, js.Value:
			out[i] = v
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
