package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ibelem/onnx-model/internal/onnx"
	"github.com/ibelem/onnx-model/internal/onnx/onnxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/proto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newCommand(&stdout, &stderr).Run(context.Background(), append([]string{"onnx-webnn"}, args...))
	return stdout.String(), err
}

func TestListONNX(t *testing.T) {
	model := &onnx.ModelProto{Graph: &onnx.GraphProto{Node: []*onnx.NodeProto{
		{OpType: "Relu"}, {OpType: "Conv"}, {OpType: "Constant"}, {OpType: "Relu"},
	}}}
	modelPath := filepath.Join(t.TempDir(), "mobilenet.onnx")
	require.NoError(t, os.WriteFile(modelPath, onnxtest.Marshal(model), 0o644))

	out, err := run(t, "--model", modelPath)
	require.NoError(t, err)
	assert.Equal(t, modelPath+"\n['Constant', 'Conv', 'Relu']\n", out)

	_, statErr := os.Stat(modelPath + ".txt")
	assert.True(t, os.IsNotExist(statErr))
}

func TestListEmptyGraph(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "empty.onnx")
	require.NoError(t, os.WriteFile(modelPath, onnxtest.Marshal(&onnx.ModelProto{Graph: &onnx.GraphProto{}}), 0o644))

	out, err := run(t, "-m", modelPath)
	require.NoError(t, err)
	assert.Equal(t, modelPath+"\n[]\n", out)
}

func TestListZMF(t *testing.T) {
	data, err := proto.Marshal(&zmf.Model{Graph: &zmf.Graph{Nodes: []*zmf.Node{
		{Name: "b", OpType: "MatMul"}, {Name: "a", OpType: "Add"},
	}}})
	require.NoError(t, err)
	modelPath := filepath.Join(t.TempDir(), "model.bin")
	require.NoError(t, os.WriteFile(modelPath, data, 0o644))

	out, err := run(t, "--model", modelPath, "--format", "zmf")
	require.NoError(t, err)
	assert.Equal(t, modelPath+"\n['Add', 'MatMul']\n", out)
}

func TestListErrors(t *testing.T) {
	_, err := run(t)
	require.Error(t, err)

	modelPath := filepath.Join(t.TempDir(), "missing.onnx")
	out, err := run(t, "--model", modelPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load model")
	assert.Equal(t, modelPath+"\n", out)

	_, err = run(t, "--model", modelPath, "--format", "tflite")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported model format")
}
