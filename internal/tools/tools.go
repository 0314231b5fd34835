//go:build tools

// Package tools records build-time tool dependencies so `go mod tidy`
// doesn't drop them; it is never compiled into the binary.
package tools

import (
	_ "golang.org/x/tools/cmd/stringer"
)
