// Command onnx-model reports the operators of an ONNX model together with
// the element types and attribute kinds each operator uses. The report is
// printed and written to <model file name>.txt.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ibelem/onnx-model/internal/cmdutil"
	"github.com/ibelem/onnx-model/pkg/inspector"
	"github.com/ibelem/onnx-model/pkg/report"
	"github.com/ibelem/onnx-model/pkg/session"
	"github.com/urfave/cli/v3"
)

// sessionRuntime is an introspector holding runtime resources.
type sessionRuntime interface {
	session.Introspector
	Close() error
}

type runtimeFactory func(libraryPath string, logger *slog.Logger) sessionRuntime

func main() {
	openRuntime := func(libraryPath string, logger *slog.Logger) sessionRuntime {
		return session.NewRuntime(libraryPath, logger)
	}
	if err := newCommand(os.Stdout, os.Stderr, openRuntime).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer, openRuntime runtimeFactory) *cli.Command {
	var (
		opts        cmdutil.Options
		outputDir   string
		libraryPath string
	)

	flags := append(opts.Flags(),
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "directory the report file is written to",
			Value:       ".",
			Destination: &outputDir,
		},
		&cli.StringFlag{
			Name:        "ort-lib",
			Usage:       "path to the onnxruntime shared library",
			Value:       cmdutil.DefaultLibraryPath(),
			Sources:     cli.EnvVars("ONNXRUNTIME_LIB_PATH"),
			Destination: &libraryPath,
		},
	)

	return &cli.Command{
		Name:      "onnx-model",
		Usage:     "report operators, tensor types and attribute kinds of an ONNX model",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     flags,
		Action: func(ctx context.Context, _ *cli.Command) error {
			logger := opts.Logger(stderr)

			modelPath, err := opts.ResolveModel(ctx, logger)
			if err != nil {
				return err
			}

			sink, err := report.NewFileSink(modelPath, outputDir, stdout)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := sink.Close(); cerr != nil {
					logger.Error("failed to close report file", "path", sink.Path(), "error", cerr)
				}
			}()

			rt := openRuntime(libraryPath, logger)
			defer func() {
				if cerr := rt.Close(); cerr != nil {
					logger.Error("failed to release ONNX Runtime", "error", cerr)
				}
			}()

			in := &inspector.Inspector{Session: rt, Logger: logger}
			if err := in.InspectONNX(ctx, modelPath, sink); err != nil {
				return err
			}
			logger.Debug("report written", "path", sink.Path())
			return nil
		},
	}
}
