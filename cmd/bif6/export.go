package main

import (
	"context"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/msimaging/bif6/pkg/bif6"
)

// exportedInterval is the JSON shape written by the export command, one
// object per line. Pixels follow the decoded (width, height) orientation.
type exportedInterval struct {
	ID       uint32     `json:"id"`
	MZLower  float32    `json:"mz_lower"`
	MZMiddle float32    `json:"mz_middle"`
	MZUpper  float32    `json:"mz_upper"`
	TIC      bool       `json:"tic"`
	Pixels   [][]uint32 `json:"pixels,omitempty"`
}

func exportCmd() *cli.Command {
	var (
		withPixels bool
		outPath    string
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Export intervals as JSON, one object per line",
		Flags: append([]cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:        "pixels",
				Usage:       "include the full pixel array per interval",
				Destination: &withPixels,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output path (default stdout)",
				Destination: &outPath,
			},
		}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, loadConfig(), nil)
			log := newLogger()

			out := io.Writer(os.Stdout)
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			r, err := bif6.Open(filePath)
			if err != nil {
				return err
			}
			defer func() { _ = r.Close() }()

			enc := json.NewEncoder(out)
			for {
				iv, err := r.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				rec := exportedInterval{
					ID:       iv.ID,
					MZLower:  iv.MZLower,
					MZMiddle: iv.MZMiddle,
					MZUpper:  iv.MZUpper,
					TIC:      iv.IsTICImage(),
				}
				if withPixels {
					rec.Pixels = iv.Image
				}
				if err := enc.Encode(rec); err != nil {
					return err
				}
			}

			log.Info("export finished", "file", filePath, "intervals", r.Decoded())
			return nil
		},
	}
}
