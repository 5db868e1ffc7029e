package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorType(t *testing.T) {
	assert.Equal(t, "tensor(float)", TensorType(1))
	assert.Equal(t, "tensor(int64)", TensorType(7))
	assert.Equal(t, "tensor(double)", TensorType(11))
	assert.Equal(t, "tensor(bfloat16)", TensorType(16))
	assert.Equal(t, "tensor(unknown(99))", TensorType(99))
}

func TestFormatPorts(t *testing.T) {
	assert.Equal(t, "{}", FormatPorts(nil))
	assert.Equal(t,
		"{'input_ids': 'tensor(int64)', 'attention_mask': 'tensor(int64)'}",
		FormatPorts([]Port{
			{Name: "input_ids", Type: "tensor(int64)"},
			{Name: "attention_mask", Type: "tensor(int64)"},
		}),
	)
}

func TestCreationError(t *testing.T) {
	cause := errors.New("bad opset")
	err := error(&CreationError{Path: "m.onnx", Err: cause})

	assert.True(t, errors.Is(err, ErrCreation))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "failed to create session for m.onnx: bad opset", err.Error())
}

func TestRuntimeWithoutLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.onnx")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	rt := NewRuntime("", nil)
	defer func() {
		assert.NoError(t, rt.Close())
	}()

	_, err := rt.Introspect(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCreation))
}
