//go:build js && wasm

package main

import (
	"context"
	"net/url"
	"syscall/js"

	"github.com/vcrobe/siteheader/config"
	"github.com/vcrobe/siteheader/console"
	"github.com/vcrobe/siteheader/dom/jsdom"
	"github.com/vcrobe/siteheader/header"
)

func main() {
	// 1. Settings: the browser has no environment, so this yields defaults
	cfg, err := config.Load()
	if err != nil {
		console.Error("Invalid header config, using defaults:", err)
		cfg = config.Config{
			Source:        header.DefaultSource,
			PlaceholderID: header.PlaceholderID,
			Breakpoint:    header.DefaultBreakpoint,
		}
	}

	// 2. Resolve header.html relative to the current page
	win := jsdom.NewWindow()
	base, err := url.Parse(win.Href())
	if err != nil {
		console.Error("Cannot parse page URL:", err)
		return
	}
	loader := cfg.Loader(header.NewHTTPFetcher(nil, base))

	// Fetches block, and blocking inside a js.FuncOf callback deadlocks the
	// event loop, so every load runs on its own goroutine.
	load := func() {
		go loader.Load(context.Background(), win)
	}

	// 3. Let other scripts re-run the load (e.g. after swapping page content)
	js.Global().Set("loadHeader", js.FuncOf(func(this js.Value, args []js.Value) any {
		load()
		return nil
	}))

	// siteHeader() wires a controller over header markup already in the
	// page, for sites that inline the header instead of fetching it
	js.Global().Set("siteHeader", js.FuncOf(func(this js.Value, args []js.Value) any {
		h := header.New(win, header.WithBreakpoint(cfg.Breakpoint))
		return exportHeader(h)
	}))

	// 4. Load once the document is parsed
	win.OnReady(load)

	// Keep the Go program running
	select {}
}

// exportHeader exposes h's bindings as methods of a JS object. Calling
// destroy releases every js.Func of the object.
func exportHeader(h *header.Header) js.Value {
	obj := js.Global().Get("Object").New()
	var funcs []js.Func
	for _, b := range h.Bindings() {
		b := b
		fn := js.FuncOf(func(this js.Value, args []js.Value) any {
			result := b.Call()
			if b.Name == "destroy" {
				for _, f := range funcs {
					f.Release()
				}
			}
			return result
		})
		funcs = append(funcs, fn)
		obj.Set(b.Name, fn)
	}
	return obj
}
