// Command onnx-webnn prints the distinct operators a model uses, for checking
// them against the operators a WebNN backend supports.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ibelem/onnx-model/internal/cmdutil"
	"github.com/ibelem/onnx-model/pkg/inspector"
	"github.com/ibelem/onnx-model/pkg/report"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	var (
		opts   cmdutil.Options
		format string
	)

	flags := append(opts.Flags(), &cli.StringFlag{
		Name:        "format",
		Usage:       "model format, onnx or zmf (default: from the file extension)",
		Destination: &format,
	})

	return &cli.Command{
		Name:      "onnx-webnn",
		Usage:     "list the distinct operators of a model",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     flags,
		Action: func(ctx context.Context, _ *cli.Command) error {
			logger := opts.Logger(stderr)

			modelPath, err := opts.ResolveModel(ctx, logger)
			if err != nil {
				return err
			}
			f, err := inspector.DetectFormat(modelPath, format)
			if err != nil {
				return err
			}
			return inspector.ListOperators(modelPath, f, report.NewWriterSink(stdout), logger)
		},
	}
}
