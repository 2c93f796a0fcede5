// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bureau-foundation/huff/cmd/huff/cli"
	"github.com/bureau-foundation/huff/cmd/huff/commands"
)

func main() {
	err := run()
	code, printMessage := cli.ExitCodeFor(err)
	if printMessage {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	if code != 0 {
		os.Exit(code)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return commands.Root().Execute(ctx, os.Args[1:])
}
