package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/msimaging/bif6/internal/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("bif6 %s\n", version.String())
			if version.BuildTime != "" {
				fmt.Printf("build time: %s\n", version.BuildTime)
			}
			return nil
		},
	}
}
