package zmf_inspector

import (
	"fmt"
	"log/slog"

	"github.com/ibelem/onnx-model/pkg/importer"
	"github.com/zerfoo/zerfoo/model"
	"github.com/zerfoo/zmf"
)

// Load reads and deserializes a ZMF model from a file.
func Load(file string) (*zmf.Model, error) {
	m, err := model.LoadZMF(file)
	if err != nil {
		return nil, &importer.ModelLoadError{Path: file, Err: fmt.Errorf("failed to load ZMF file: %w", err)}
	}
	return m, nil
}

// OperatorTypes returns the op type of every node in graph order, including
// duplicates and empty values.
func OperatorTypes(m *zmf.Model) []string {
	nodes := m.GetGraph().GetNodes()
	ops := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ops = append(ops, node.GetOpType())
	}
	return ops
}

// LogSummary records the producer and size of a ZMF model at debug level.
func LogSummary(logger *slog.Logger, m *zmf.Model) {
	logger.Debug("loaded ZMF model",
		"producer", m.GetMetadata().GetProducerName(),
		"producer_version", m.GetMetadata().GetProducerVersion(),
		"opset", m.GetMetadata().GetOpsetVersion(),
		"nodes", len(m.GetGraph().GetNodes()),
		"parameters", len(m.GetGraph().GetParameters()),
	)
}
