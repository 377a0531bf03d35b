// Package cmd holds the startup plumbing shared by command entry points.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pipps42/dm-assistant-sub001/internal/platform/config"
	"github.com/pipps42/dm-assistant-sub001/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// ServiceCampaigns names the campaigns command in telemetry and logs.
const ServiceCampaigns = "campaigns"

// RunOptions controls shared entrypoint behavior for commands.
type RunOptions struct {
	// Telemetry configures trace export.
	Telemetry otel.Config
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
}

// ParseConfig loads DM_ASSISTANT_* environment values into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing from the environment and executes run.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	var telemetry otel.Config
	if err := ParseConfig(&telemetry); err != nil {
		return err
	}
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{Telemetry: telemetry}, run)
}

// RunWithTelemetryAndOptions configures tracing and executes run.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service, options.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
