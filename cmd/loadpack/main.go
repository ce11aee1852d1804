// LoadPack packs rectangular loads into a fixed container.
//
// Build:
//
//	go build -o loadpack ./cmd/loadpack
//
// Examples:
//
//	loadpack pack --random 20 --png layout.png
//	loadpack pack --loads loads.yaml --container "Euro pallet (EUR1)" --pdf plan.pdf
//	loadpack serve --addr :8080
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/piwi3910/LoadPack/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
