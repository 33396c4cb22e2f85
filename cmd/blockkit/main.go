// Package main is the entry point for the blockkit CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/imryche/blockkit-sub000/cmd/blockkit/internal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := internal.Run(ctx, os.Args[1:], nil); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
