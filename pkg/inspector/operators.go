package inspector

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ibelem/onnx-model/internal/onnx"
	"github.com/ibelem/onnx-model/pkg/report"
)

// OperatorTypes returns the distinct, sorted op types used by g.
func OperatorTypes(g *onnx.GraphProto) []string {
	nodes := g.GetNode()
	ops := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ops = append(ops, node.GetOpType())
	}
	return DistinctOperators(ops)
}

// DistinctOperators drops empty and repeated op types and sorts the rest.
func DistinctOperators(opTypes []string) []string {
	seen := make(map[string]struct{}, len(opTypes))
	distinct := make([]string, 0, len(opTypes))
	for _, op := range opTypes {
		if op == "" {
			continue
		}
		if _, ok := seen[op]; ok {
			continue
		}
		seen[op] = struct{}{}
		distinct = append(distinct, op)
	}
	slices.Sort(distinct)
	return distinct
}

// FormatList renders names as a bracketed, quoted list: ['Conv', 'Relu'].
func FormatList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// ReportOperators appends the operator section: a separator, the sorted
// list and its size.
func ReportOperators(ops []string, sink report.Sink) error {
	return sink.Append(
		report.Separator,
		FormatList(ops),
		fmt.Sprintf("Total: %d", len(ops)),
	)
}
