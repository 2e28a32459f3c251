package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"shelve/internal/faults"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		if faults.Fatal(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
