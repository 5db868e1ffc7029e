package inspector

import (
	"fmt"

	"github.com/ibelem/onnx-model/internal/onnx"
	"github.com/ibelem/onnx-model/pkg/registry"
	"github.com/ibelem/onnx-model/pkg/report"
)

// ConstantOp carries a literal tensor instead of referencing values, so it
// has no types to resolve.
const ConstantOp = "Constant"

// ReportSignatures appends, for every node of g in order, its op type, the
// types of its resolvable inputs and outputs and the kind of each attribute.
// Unresolvable names are left out. An unknown type code stops the pass with
// an error wrapping registry.ErrUnknownTypeCode; lines appended before that
// stay in the sink.
func ReportSignatures(g *onnx.GraphProto, tables TypeTables, sink report.Sink) error {
	for _, node := range g.GetNode() {
		op := node.GetOpType()
		if op == "" || op == ConstantOp {
			continue
		}
		if err := sink.Append(report.Separator, op); err != nil {
			return err
		}

		for _, name := range node.GetInput() {
			code, ok := tables.Input(name)
			if !ok {
				continue
			}
			if err := appendValue(sink, "input", code); err != nil {
				return fmt.Errorf("node %q input %q: %w", node.GetName(), name, err)
			}
		}
		for _, name := range node.GetOutput() {
			code, ok := tables.Output(name)
			if !ok {
				continue
			}
			if err := appendValue(sink, "output", code); err != nil {
				return fmt.Errorf("node %q output %q: %w", node.GetName(), name, err)
			}
		}
		for _, attr := range node.GetAttribute() {
			kind, err := registry.AttrKindName(int32(attr.GetType()))
			if err != nil {
				return fmt.Errorf("node %q attribute %q: %w", node.GetName(), attr.GetName(), err)
			}
			if err := sink.Append("  attribute " + attr.GetName() + " " + kind); err != nil {
				return err
			}
		}
	}
	return nil
}

func appendValue(sink report.Sink, role string, code int32) error {
	name, err := registry.ElemTypeName(code)
	if err != nil {
		return err
	}
	return sink.Append("  " + role + " " + name)
}
