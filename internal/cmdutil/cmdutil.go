// Package cmdutil holds the flags and setup shared by the command-line tools.
package cmdutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ibelem/onnx-model/pkg/downloader"
	"github.com/urfave/cli/v3"
)

// Options are the settings common to every tool.
type Options struct {
	Model    string
	CacheDir string
	APIKey   string
	Debug    bool
}

// Flags returns the flags bound to o.
func (o *Options) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "model",
			Aliases:     []string{"m"},
			Usage:       "path to the model file, or hf://<org>/<name>[/<file>] to fetch it from the HuggingFace Hub",
			Destination: &o.Model,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "cache-dir",
			Usage:       "directory hf:// models are downloaded to",
			Value:       DefaultCacheDir(),
			Destination: &o.CacheDir,
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "HuggingFace API key for private models",
			Sources:     cli.EnvVars("HF_API_KEY"),
			Destination: &o.APIKey,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "log debug messages to stderr",
			Destination: &o.Debug,
		},
	}
}

// Logger returns a text logger on w honouring the debug flag.
func (o *Options) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ResolveModel returns a local path for the model flag, downloading hf://
// references into the cache directory.
func (o *Options) ResolveModel(ctx context.Context, logger *slog.Logger) (string, error) {
	d := downloader.NewDownloader(downloader.NewHuggingFaceSource(o.APIKey, logger))
	return d.Resolve(ctx, o.Model, o.CacheDir)
}

// DefaultCacheDir is the per-user cache location for downloaded models.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "onnx-model")
}

// DefaultLibraryPath guesses where the onnxruntime shared library is
// installed on this platform.
func DefaultLibraryPath() string {
	switch runtime.GOOS {
	case "windows":
		return "onnxruntime.dll"
	case "darwin":
		if runtime.GOARCH == "arm64" {
			return "/opt/homebrew/lib/libonnxruntime.dylib"
		}
		return "/usr/local/lib/libonnxruntime.dylib"
	default:
		return "/usr/local/lib/libonnxruntime.so"
	}
}
