//go:build cgo

package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Runtime introspects models with ONNX Runtime. The environment is
// initialised on first use and shared until Close.
type Runtime struct {
	libraryPath string
	logger      *slog.Logger

	mu          sync.Mutex
	initialized bool
}

// NewRuntime returns a Runtime loading the shared library at libraryPath.
func NewRuntime(libraryPath string, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runtime{libraryPath: libraryPath, logger: logger}
}

func (r *Runtime) init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}
	if r.libraryPath == "" {
		return fmt.Errorf("no onnxruntime shared library configured")
	}

	ort.SetSharedLibraryPath(r.libraryPath)
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("failed to initialize ONNX Runtime environment: %w", err)
	}
	r.logger.Debug("initialized ONNX Runtime", "library", r.libraryPath)

	r.initialized = true
	return nil
}

// Introspect opens modelPath and returns its declared ports.
func (r *Runtime) Introspect(ctx context.Context, modelPath string) (*Signature, error) {
	if err := ctx.Err(); err != nil {
		return nil, &CreationError{Path: modelPath, Err: err}
	}
	if err := r.init(); err != nil {
		return nil, &CreationError{Path: modelPath, Err: err}
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, &CreationError{Path: modelPath, Err: fmt.Errorf("failed to get input/output info: %w", err)}
	}

	sig := &Signature{
		Inputs:  make([]Port, 0, len(inputs)),
		Outputs: make([]Port, 0, len(outputs)),
	}
	for _, info := range inputs {
		sig.Inputs = append(sig.Inputs, Port{Name: info.Name, Type: portType(info)})
	}
	for _, info := range outputs {
		sig.Outputs = append(sig.Outputs, Port{Name: info.Name, Type: portType(info)})
	}
	return sig, nil
}

// Close destroys the ONNX Runtime environment if it was initialised.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return nil
	}
	if err := ort.DestroyEnvironment(); err != nil {
		return err
	}
	r.initialized = false
	return nil
}

// portType renders tensors with their element type and everything else
// with the lower-cased value kind, since the inner types are not reported.
func portType(info ort.InputOutputInfo) string {
	if info.OrtValueType == ort.ONNXTypeTensor {
		return TensorType(int32(info.DataType))
	}
	return strings.ToLower(fmt.Sprint(info.OrtValueType))
}
