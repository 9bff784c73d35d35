// Package main implements fitcore, a small command that validates one fitness
// record read from stdin and prints the normalized record together with the
// metrics derived from it.
//
// Usage:
//
//	fitcore --kind user_profile < profile.json
//
// The exit status is 0 on success, 2 when the record fails validation and 1
// on any other error.
package main

import (
	"context"
	"os"
)

// main is the entry point for the fitcore command.
func main() {
	os.Exit(run(context.Background(), os.Args[1:], streams{
		in:  os.Stdin,
		out: os.Stdout,
		err: os.Stderr,
	}))
}
