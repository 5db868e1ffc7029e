package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ibelem/onnx-model/internal/onnx"
	"github.com/ibelem/onnx-model/internal/onnx/onnxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOnnxModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "add.onnx")
	model := &onnx.ModelProto{
		IrVersion:   8,
		OpsetImport: []*onnx.OperatorSetIdProto{{Version: 13}},
		Graph: &onnx.GraphProto{
			Node: []*onnx.NodeProto{{OpType: "Add", Input: []string{"a", "b"}, Output: []string{"c"}}},
		},
	}
	require.NoError(t, os.WriteFile(path, onnxtest.Marshal(model), 0o644))

	got, err := LoadOnnxModel(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.GetIrVersion())
	require.Len(t, got.GetGraph().GetNode(), 1)
	assert.Equal(t, "Add", got.GetGraph().GetNode()[0].GetOpType())
}

func TestLoadOnnxModelErrors(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.onnx")
	// A length-delimited graph field claiming more bytes than present.
	require.NoError(t, os.WriteFile(corrupt, []byte{0x3a, 0x7f, 0x01}, 0o644))

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"missing file", filepath.Join(dir, "missing.onnx"), "failed to read ONNX file"},
		{"corrupt file", corrupt, "failed to unmarshal ONNX protobuf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOnnxModel(tt.path)
			require.Error(t, err)

			var loadErr *ModelLoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.path, loadErr.Path)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	_, err := LoadOnnxModel(filepath.Join(dir, "missing.onnx"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
