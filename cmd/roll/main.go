package main

import (
	"context"
	"errors"
	"flag"
	"os"

	platformcmd "github.com/louisbranch/rolldice/internal/platform/cmd"
	"github.com/louisbranch/rolldice/internal/platform/config"
	"github.com/louisbranch/rolldice/internal/tools/roll"
)

func main() {
	cfg, err := roll.ParseConfig(flag.CommandLine, os.Args[1:])
	if errors.Is(err, platformcmd.ErrUsage) {
		config.ExitWithCode(config.ExitUsage, "%s", roll.Usage(cfg.Locale))
	}
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	err = platformcmd.RunWithTelemetry(context.Background(), platformcmd.ServiceRoll, func(ctx context.Context) error {
		return roll.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("roll: %s", roll.ErrorMessage(err, cfg.Locale))
	}
}
