//go:build !cgo

package session

import (
	"context"
	"errors"
	"log/slog"
)

var errNoCgo = errors.New("ONNX Runtime support requires a cgo-enabled build")

// Runtime stands in for the ONNX Runtime introspector in builds without cgo.
// Every call fails.
type Runtime struct{}

func NewRuntime(_ string, _ *slog.Logger) *Runtime {
	return &Runtime{}
}

func (r *Runtime) Introspect(_ context.Context, modelPath string) (*Signature, error) {
	return nil, &CreationError{Path: modelPath, Err: errNoCgo}
}

func (r *Runtime) Close() error {
	return nil
}
