// Package main provides treectl, a small CLI for building and checking trees.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
