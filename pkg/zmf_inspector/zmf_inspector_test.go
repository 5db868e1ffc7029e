package zmf_inspector

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ibelem/onnx-model/pkg/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/proto"
)

// Helper function to create a dummy ZMF model file
func createDummyZmfModel(t *testing.T, dir, filename string) string {
	zmfModel := &zmf.Model{
		Metadata: &zmf.Metadata{
			ProducerName:    "test-producer",
			ProducerVersion: "1.0",
			OpsetVersion:    1,
		},
		Graph: &zmf.Graph{
			Nodes: []*zmf.Node{
				{Name: "mul_0", OpType: "Mul"},
				{Name: "add_0", OpType: "Add"},
				{Name: "mul_1", OpType: "Mul"},
			},
		},
	}
	data, err := proto.Marshal(zmfModel)
	require.NoError(t, err)
	filePath := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(filePath, data, 0o644))
	return filePath
}

func TestLoadAndOperatorTypes(t *testing.T) {
	path := createDummyZmfModel(t, t.TempDir(), "test.zmf")

	model, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mul", "Add", "Mul"}, OperatorTypes(model))

	var logs bytes.Buffer
	LogSummary(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})), model)
	assert.Contains(t, logs.String(), "producer=test-producer")
	assert.Contains(t, logs.String(), "nodes=3")
}

func TestOperatorTypesEmpty(t *testing.T) {
	assert.Empty(t, OperatorTypes(&zmf.Model{}))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.zmf"))
	require.Error(t, err)

	var loadErr *importer.ModelLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.zmf")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xff, 0xff}, 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var loadErr *importer.ModelLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
}
