package main

import (
	"fmt"
	"io"
	"sync"
)

// terminalHost redraws a single line in place.
type terminalHost struct {
	mu  sync.Mutex
	out io.Writer
}

func (h *terminalHost) SetText(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.out, "\r\033[K%s", text)
}

func (h *terminalHost) Hide() {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprint(h.out, "\r\033[K")
}
