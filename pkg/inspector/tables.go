package inspector

import "github.com/ibelem/onnx-model/internal/onnx"

// TypeTables resolves value names to element type codes. Node inputs are
// looked up in the input side (initializers, then graph inputs); node outputs
// in the output side (value-info, then graph outputs). The sides are kept
// apart, so an intermediate value only resolves when read as an output.
type TypeTables struct {
	inputs  map[string]int32
	outputs map[string]int32
}

// BuildTypeTables collects the declared element types of g. The first
// declaration of a name wins. UNDEFINED (0) types, which is also what
// non-tensor value-info carries, are not recorded.
func BuildTypeTables(g *onnx.GraphProto) TypeTables {
	tables := TypeTables{
		inputs:  make(map[string]int32),
		outputs: make(map[string]int32),
	}
	for _, t := range g.GetInitializer() {
		record(tables.inputs, t.GetName(), t.GetDataType())
	}
	for _, info := range g.GetInput() {
		record(tables.inputs, info.GetName(), elemType(info))
	}
	for _, info := range g.GetValueInfo() {
		record(tables.outputs, info.GetName(), elemType(info))
	}
	for _, info := range g.GetOutput() {
		record(tables.outputs, info.GetName(), elemType(info))
	}
	return tables
}

func elemType(info *onnx.ValueInfoProto) int32 {
	return info.GetType().GetTensorType().GetElemType()
}

func record(table map[string]int32, name string, code int32) {
	if code == int32(onnx.TensorProto_UNDEFINED) {
		return
	}
	if _, ok := table[name]; ok {
		return
	}
	table[name] = code
}

// Input returns the element type code of name when read as a node input.
func (t TypeTables) Input(name string) (int32, bool) {
	code, ok := t.inputs[name]
	return code, ok
}

// Output returns the element type code of name when read as a node output.
func (t TypeTables) Output(name string) (int32, bool) {
	code, ok := t.outputs[name]
	return code, ok
}
