package importer

import (
	"fmt"
	"os"

	"github.com/ibelem/onnx-model/internal/onnx"
)

// ModelLoadError is returned when a model file cannot be read or parsed.
type ModelLoadError struct {
	Path string
	Err  error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("failed to load model %s: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}

// LoadOnnxModel reads an ONNX model file and returns the parsed ModelProto.
func LoadOnnxModel(path string) (*onnx.ModelProto, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Err: fmt.Errorf("failed to read ONNX file: %w", err)}
	}

	model := &onnx.ModelProto{}
	if err := onnx.Unmarshal(data, model); err != nil {
		return nil, &ModelLoadError{Path: path, Err: fmt.Errorf("failed to unmarshal ONNX protobuf: %w", err)}
	}

	return model, nil
}
