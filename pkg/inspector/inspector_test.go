package inspector

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ibelem/onnx-model/internal/onnx"
	"github.com/ibelem/onnx-model/internal/onnx/onnxtest"
	"github.com/ibelem/onnx-model/pkg/importer"
	"github.com/ibelem/onnx-model/pkg/report"
	"github.com/ibelem/onnx-model/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/proto"
)

// fakeSession is an Introspector returning a fixed signature or error.
type fakeSession struct {
	sig   *session.Signature
	err   error
	paths []string
}

func (f *fakeSession) Introspect(_ context.Context, modelPath string) (*session.Signature, error) {
	f.paths = append(f.paths, modelPath)
	if f.err != nil {
		return nil, &session.CreationError{Path: modelPath, Err: f.err}
	}
	return f.sig, nil
}

// Helper function to create a dummy ONNX model file
func createDummyOnnxModel(t *testing.T, dir, filename string) string {
	t.Helper()
	model := &onnx.ModelProto{
		IrVersion:   4,
		OpsetImport: []*onnx.OperatorSetIdProto{{Version: 9}},
		Graph: &onnx.GraphProto{
			Node: []*onnx.NodeProto{
				{Name: "const", OpType: "Constant", Output: []string{"k"}},
				{Name: "node1", OpType: "Add", Input: []string{"x", "k"}, Output: []string{"s"}},
				{Name: "node2", OpType: "Mul", Input: []string{"s", "w"}, Output: []string{"y"}, Attribute: []*onnx.AttributeProto{
					{Name: "broadcast", Type: onnx.AttributeProto_INT, I: 1},
				}},
				{Name: "node3", OpType: "Add", Input: []string{"y", "y"}, Output: []string{"z"}},
			},
			Initializer: []*onnx.TensorProto{{Name: "w", DataType: int32(onnx.TensorProto_FLOAT)}},
			Input:       []*onnx.ValueInfoProto{tensorInfo("x", onnx.TensorProto_FLOAT)},
			ValueInfo:   []*onnx.ValueInfoProto{tensorInfo("s", onnx.TensorProto_FLOAT)},
			Output:      []*onnx.ValueInfoProto{tensorInfo("z", onnx.TensorProto_DOUBLE)},
		},
	}
	filePath := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(filePath, onnxtest.Marshal(model), 0o644))
	return filePath
}

func TestInspectONNX(t *testing.T) {
	dir := t.TempDir()
	modelPath := createDummyOnnxModel(t, dir, "test.onnx")

	fake := &fakeSession{sig: &session.Signature{
		Inputs:  []session.Port{{Name: "x", Type: "tensor(float)"}},
		Outputs: []session.Port{{Name: "z", Type: "tensor(double)"}},
	}}
	var stdout bytes.Buffer
	sink, err := report.NewFileSink(modelPath, dir, &stdout)
	require.NoError(t, err)

	in := &Inspector{Session: fake}
	require.NoError(t, in.InspectONNX(context.Background(), modelPath, sink))
	require.NoError(t, sink.Close())

	want := []string{
		modelPath,
		report.Separator,
		"input {'x': 'tensor(float)'}",
		"output {'z': 'tensor(double)'}",
		report.Separator,
		"['Add', 'Constant', 'Mul']",
		"Total: 3",
		report.Separator,
		"Add",
		"  input float32",
		"  output float32",
		report.Separator,
		"Mul",
		"  input float32",
		"  attribute broadcast int64",
		report.Separator,
		"Add",
		"  output double",
	}
	data, err := os.ReadFile(filepath.Join(dir, "test.onnx.txt"))
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
	assert.Equal(t, string(data), stdout.String())
	assert.Equal(t, []string{modelPath}, fake.paths)
}

func TestInspectONNXSessionFailure(t *testing.T) {
	modelPath := createDummyOnnxModel(t, t.TempDir(), "test.onnx")

	var sink report.MemorySink
	in := &Inspector{Session: &fakeSession{err: errors.New("unsupported opset")}}
	err := in.InspectONNX(context.Background(), modelPath, &sink)
	require.Error(t, err)
	assert.True(t, errors.Is(err, session.ErrCreation))
	assert.Empty(t, sink.Lines())
}

func TestInspectONNXSessionFailureLeavesReportEmpty(t *testing.T) {
	dir := t.TempDir()
	modelPath := createDummyOnnxModel(t, dir, "m.onnx")

	var stdout bytes.Buffer
	sink, err := report.NewFileSink(modelPath, dir, &stdout)
	require.NoError(t, err)

	in := &Inspector{Session: &fakeSession{err: errors.New("no execution provider")}}
	err = in.InspectONNX(context.Background(), modelPath, sink)
	require.Error(t, err)
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(report.Path(modelPath, dir))
	require.NoError(t, err)
	assert.Empty(t, string(data))
	assert.Empty(t, stdout.String())
}

func TestInspectONNXLoadFailure(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "missing.onnx")

	fake := &fakeSession{sig: &session.Signature{}}
	var sink report.MemorySink
	err := (&Inspector{Session: fake}).InspectONNX(context.Background(), modelPath, &sink)

	var loadErr *importer.ModelLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Empty(t, fake.paths, "session must not be opened when the graph cannot be loaded")
	assert.Empty(t, sink.Lines())
}

func TestListOperatorsONNX(t *testing.T) {
	modelPath := createDummyOnnxModel(t, t.TempDir(), "test.onnx")

	var sink report.MemorySink
	require.NoError(t, ListOperators(modelPath, FormatONNX, &sink, nil))
	assert.Equal(t, []string{modelPath, "['Add', 'Constant', 'Mul']"}, sink.Lines())
}

func TestListOperatorsZMF(t *testing.T) {
	zmfModel := &zmf.Model{
		Graph: &zmf.Graph{
			Nodes: []*zmf.Node{
				{Name: "n0", OpType: "MatMul"},
				{Name: "n1", OpType: "Add"},
				{Name: "n2", OpType: "MatMul"},
			},
		},
	}
	data, err := proto.Marshal(zmfModel)
	require.NoError(t, err)
	modelPath := filepath.Join(t.TempDir(), "model.zmf")
	require.NoError(t, os.WriteFile(modelPath, data, 0o644))

	var sink report.MemorySink
	require.NoError(t, ListOperators(modelPath, FormatZMF, &sink, nil))
	assert.Equal(t, []string{modelPath, "['Add', 'MatMul']"}, sink.Lines())
}

func TestListOperatorsErrors(t *testing.T) {
	var sink report.MemorySink
	err := ListOperators(filepath.Join(t.TempDir(), "missing.onnx"), FormatONNX, &sink, nil)
	var loadErr *importer.ModelLoadError
	assert.True(t, errors.As(err, &loadErr))

	err = ListOperators("model.bin", "tflite", &sink, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported model format")
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path, explicit, want string
		wantErr              bool
	}{
		{path: "model.onnx", want: FormatONNX},
		{path: "model.ZMF", want: FormatZMF},
		{path: "model", want: FormatONNX},
		{path: "model.onnx", explicit: "ZMF", want: FormatZMF},
		{path: "model.zmf", explicit: "onnx", want: FormatONNX},
		{path: "model.onnx", explicit: "tflite", wantErr: true},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path, tt.explicit)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}
