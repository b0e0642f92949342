//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Schema migrations run through cmd/migrate rather than the goose CLI.
import (
	_ "github.com/matryer/moq"
)
