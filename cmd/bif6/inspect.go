package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/msimaging/bif6/pkg/bif6"
)

func inspectCmd() *cli.Command {
	var (
		limit     int64
		showStats bool
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print the header and interval summary of a BIF6 file",
		Flags: append([]cli.Flag{
			fileFlag(),
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "number of intervals to list (0 to skip, -1 for all)",
				Value:       20,
				Destination: &limit,
			},
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "show intensity statistics per interval",
				Destination: &showStats,
			},
		}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, loadConfig(), nil)
			log := newLogger()

			r, err := bif6.Open(filePath)
			if err != nil {
				return err
			}
			defer func() { _ = r.Close() }()

			width, height := r.ImageSize()
			fmt.Printf("File: %s\n", filePath)
			fmt.Printf("BIF6 | intervals=%d | image=%dx%d\n", r.IntervalCount(), width, height)

			for {
				iv, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				n := int64(r.Decoded())
				if limit >= 0 && n > limit {
					continue
				}
				tic := ""
				if iv.IsTICImage() {
					tic = "  [TIC]"
				}
				fmt.Printf("  interval %-6d m/z %g..%g (mid %g)%s\n",
					iv.ID, iv.MZLower, iv.MZUpper, iv.MZMiddle, tic)
				if showStats {
					s := iv.Stats()
					fmt.Printf("    intensity min=%d max=%d mean=%.2f stddev=%.2f total=%d\n",
						s.Min, s.Max, s.Mean, s.StdDev, s.Total)
				}
			}

			if limit >= 0 && int64(r.Decoded()) > limit {
				fmt.Printf("  ... %d more intervals\n", int64(r.Decoded())-limit)
			}
			fmt.Printf("Decoded %d of %d declared intervals\n", r.Decoded(), r.IntervalCount())
			if r.Decoded() != int(r.IntervalCount()) {
				log.Warn("declared interval count does not match records present",
					"declared", r.IntervalCount(), "decoded", r.Decoded())
			}
			return nil
		},
	}
}
