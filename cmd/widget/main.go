//go:build js && wasm

// Command widget is the storefront embed compiled to WebAssembly. It looks for
// #countdown-timer-root, reads data-product-id and drives the element's text until the offer ends.
package main

import (
	"context"
	"syscall/js"

	"countdown-timer/internal/widget"
)

const rootElementID = "countdown-timer-root"

func main() {
	boot()
	// keep the Go runtime alive for the ticker and callbacks
	select {}
}

func boot() {
	defer func() {
		// nothing may reach the page, whatever happens
		_ = recover()
	}()

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}
	el := doc.Call("getElementById", rootElementID)
	if !el.Truthy() {
		return
	}
	productID := el.Get("dataset").Get("productId")
	if productID.Type() != js.TypeString || productID.String() == "" {
		return
	}

	w := widget.New(widget.Config{
		BaseURL: js.Global().Get("location").Get("origin").String(),
	}, &elementHost{el: el}, localStorage{})

	w.Boot(context.Background(), productID.String())
}

type elementHost struct {
	el js.Value
}

func (h *elementHost) SetText(text string) {
	h.el.Set("textContent", text)
}

func (h *elementHost) Hide() {
	h.el.Get("style").Set("display", "none")
}

// localStorage is window.localStorage. Access throws when storage is disabled; the expiry
// manager recovers from that.
type localStorage struct{}

func (localStorage) storage() js.Value {
	return js.Global().Get("localStorage")
}

func (s localStorage) Get(key string) (string, bool, error) {
	v := s.storage().Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (s localStorage) Set(key, value string) error {
	s.storage().Call("setItem", key, value)
	return nil
}

func (s localStorage) Delete(key string) error {
	s.storage().Call("removeItem", key)
	return nil
}
