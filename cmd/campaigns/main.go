// Package main runs the campaigns command line tool.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	campaignscmd "github.com/pipps42/dm-assistant-sub001/internal/cmd/campaigns"
	"github.com/pipps42/dm-assistant-sub001/internal/platform/config"
)

func main() {
	cfg, err := campaignscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := campaignscmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
