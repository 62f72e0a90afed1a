//go:build tools

// Package internal records build tool dependencies so `go mod tidy` keeps
// them in go.sum without pulling them into any regular build.
package internal

import (
	_ "golang.org/x/lint/golint"
	_ "golang.org/x/tools/cmd/stringer"
)
