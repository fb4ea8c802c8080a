// Package main реализует точку входа службы заметок.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		if _, writeErr := fmt.Fprintln(os.Stderr, err); writeErr != nil {
			panic(writeErr)
		}
		os.Exit(1)
	}
}
