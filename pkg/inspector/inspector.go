package inspector

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ibelem/onnx-model/internal/onnx"
	"github.com/ibelem/onnx-model/pkg/importer"
	"github.com/ibelem/onnx-model/pkg/report"
	"github.com/ibelem/onnx-model/pkg/session"
	"github.com/ibelem/onnx-model/pkg/zmf_inspector"
)

// Model file formats accepted by ListOperators.
const (
	FormatONNX = "onnx"
	FormatZMF  = "zmf"
)

// Inspector produces the full operator and type report of an ONNX model.
type Inspector struct {
	Session session.Introspector
	Logger  *slog.Logger
}

func (in *Inspector) logger() *slog.Logger {
	if in.Logger == nil {
		return slog.Default()
	}
	return in.Logger
}

// InspectONNX writes the report of modelPath to sink: the model path, the
// session signature, the distinct operators and the per-node signatures.
// Nothing is written unless both the graph and the session load.
func (in *Inspector) InspectONNX(ctx context.Context, modelPath string, sink report.Sink) error {
	model, err := importer.LoadOnnxModel(modelPath)
	if err != nil {
		return err
	}
	logSummary(in.logger(), model)

	sig, err := in.Session.Introspect(ctx, modelPath)
	if err != nil {
		return err
	}
	if err := sink.Append(
		modelPath,
		report.Separator,
		"input "+session.FormatPorts(sig.Inputs),
		"output "+session.FormatPorts(sig.Outputs),
	); err != nil {
		return err
	}

	graph := model.GetGraph()
	if err := ReportOperators(OperatorTypes(graph), sink); err != nil {
		return err
	}
	if err := ReportSignatures(graph, BuildTypeTables(graph), sink); err != nil {
		return fmt.Errorf("failed to report node signatures: %w", err)
	}
	return nil
}

// ListOperators writes the model path and its sorted distinct operators to
// sink. format is FormatONNX or FormatZMF.
func ListOperators(modelPath, format string, sink report.Sink, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := sink.Append(modelPath); err != nil {
		return err
	}

	var ops []string
	switch format {
	case FormatONNX:
		model, err := importer.LoadOnnxModel(modelPath)
		if err != nil {
			return err
		}
		logSummary(logger, model)
		ops = OperatorTypes(model.GetGraph())
	case FormatZMF:
		model, err := zmf_inspector.Load(modelPath)
		if err != nil {
			return err
		}
		zmf_inspector.LogSummary(logger, model)
		ops = DistinctOperators(zmf_inspector.OperatorTypes(model))
	default:
		return fmt.Errorf("unsupported model format %q", format)
	}

	return sink.Append(FormatList(ops))
}

// DetectFormat returns the explicit format when set, otherwise infers it
// from the file extension. Anything but .zmf is treated as ONNX.
func DetectFormat(modelPath, explicit string) (string, error) {
	switch f := strings.ToLower(explicit); f {
	case FormatONNX, FormatZMF:
		return f, nil
	case "":
	default:
		return "", fmt.Errorf("unsupported model format %q, must be %q or %q", explicit, FormatONNX, FormatZMF)
	}
	if strings.EqualFold(filepath.Ext(modelPath), ".zmf") {
		return FormatZMF, nil
	}
	return FormatONNX, nil
}

func logSummary(logger *slog.Logger, model *onnx.ModelProto) {
	var opset int64
	if imports := model.GetOpsetImport(); len(imports) > 0 {
		opset = imports[0].GetVersion()
	}
	logger.Debug("loaded ONNX model",
		"ir_version", model.GetIrVersion(),
		"opset", opset,
		"producer", model.GetProducerName(),
		"nodes", len(model.GetGraph().GetNode()),
	)
}
