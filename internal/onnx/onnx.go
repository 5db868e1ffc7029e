// Package onnx holds the subset of the ONNX protobuf schema (onnx.proto,
// IR version 9) that the inspection tools read, together with a wire decoder
// for it. Field numbers follow onnx.proto; fields the tools never look at are
// skipped on decode.
package onnx

import "strconv"

// TensorProto_DataType is the element type of a tensor.
type TensorProto_DataType int32

const (
	TensorProto_UNDEFINED      TensorProto_DataType = 0
	TensorProto_FLOAT          TensorProto_DataType = 1
	TensorProto_UINT8          TensorProto_DataType = 2
	TensorProto_INT8           TensorProto_DataType = 3
	TensorProto_UINT16         TensorProto_DataType = 4
	TensorProto_INT16          TensorProto_DataType = 5
	TensorProto_INT32          TensorProto_DataType = 6
	TensorProto_INT64          TensorProto_DataType = 7
	TensorProto_STRING         TensorProto_DataType = 8
	TensorProto_BOOL           TensorProto_DataType = 9
	TensorProto_FLOAT16        TensorProto_DataType = 10
	TensorProto_DOUBLE         TensorProto_DataType = 11
	TensorProto_UINT32         TensorProto_DataType = 12
	TensorProto_UINT64         TensorProto_DataType = 13
	TensorProto_COMPLEX64      TensorProto_DataType = 14
	TensorProto_COMPLEX128     TensorProto_DataType = 15
	TensorProto_BFLOAT16       TensorProto_DataType = 16
	TensorProto_FLOAT8E4M3FN   TensorProto_DataType = 17
	TensorProto_FLOAT8E4M3FNUZ TensorProto_DataType = 18
	TensorProto_FLOAT8E5M2     TensorProto_DataType = 19
	TensorProto_FLOAT8E5M2FNUZ TensorProto_DataType = 20
)

// TensorProto_DataType_name maps element type codes to their enum names.
var TensorProto_DataType_name = map[int32]string{
	0:  "UNDEFINED",
	1:  "FLOAT",
	2:  "UINT8",
	3:  "INT8",
	4:  "UINT16",
	5:  "INT16",
	6:  "INT32",
	7:  "INT64",
	8:  "STRING",
	9:  "BOOL",
	10: "FLOAT16",
	11: "DOUBLE",
	12: "UINT32",
	13: "UINT64",
	14: "COMPLEX64",
	15: "COMPLEX128",
	16: "BFLOAT16",
	17: "FLOAT8E4M3FN",
	18: "FLOAT8E4M3FNUZ",
	19: "FLOAT8E5M2",
	20: "FLOAT8E5M2FNUZ",
}

func (x TensorProto_DataType) String() string {
	if name, ok := TensorProto_DataType_name[int32(x)]; ok {
		return name
	}
	return strconv.Itoa(int(x))
}

// AttributeProto_AttributeType is the kind of value an attribute carries.
type AttributeProto_AttributeType int32

const (
	AttributeProto_UNDEFINED      AttributeProto_AttributeType = 0
	AttributeProto_FLOAT          AttributeProto_AttributeType = 1
	AttributeProto_INT            AttributeProto_AttributeType = 2
	AttributeProto_STRING         AttributeProto_AttributeType = 3
	AttributeProto_TENSOR         AttributeProto_AttributeType = 4
	AttributeProto_GRAPH          AttributeProto_AttributeType = 5
	AttributeProto_FLOATS         AttributeProto_AttributeType = 6
	AttributeProto_INTS           AttributeProto_AttributeType = 7
	AttributeProto_STRINGS        AttributeProto_AttributeType = 8
	AttributeProto_TENSORS        AttributeProto_AttributeType = 9
	AttributeProto_GRAPHS         AttributeProto_AttributeType = 10
	AttributeProto_SPARSE_TENSOR  AttributeProto_AttributeType = 11
	AttributeProto_SPARSE_TENSORS AttributeProto_AttributeType = 12
	AttributeProto_TYPE_PROTO     AttributeProto_AttributeType = 13
	AttributeProto_TYPE_PROTOS    AttributeProto_AttributeType = 14
)

// AttributeProto_AttributeType_name maps attribute kind codes to their enum names.
var AttributeProto_AttributeType_name = map[int32]string{
	0:  "UNDEFINED",
	1:  "FLOAT",
	2:  "INT",
	3:  "STRING",
	4:  "TENSOR",
	5:  "GRAPH",
	6:  "FLOATS",
	7:  "INTS",
	8:  "STRINGS",
	9:  "TENSORS",
	10: "GRAPHS",
	11: "SPARSE_TENSOR",
	12: "SPARSE_TENSORS",
	13: "TYPE_PROTO",
	14: "TYPE_PROTOS",
}

func (x AttributeProto_AttributeType) String() string {
	if name, ok := AttributeProto_AttributeType_name[int32(x)]; ok {
		return name
	}
	return strconv.Itoa(int(x))
}

// ModelProto is the top-level container of a serialized model.
type ModelProto struct {
	IrVersion       int64
	OpsetImport     []*OperatorSetIdProto
	ProducerName    string
	ProducerVersion string
	Domain          string
	ModelVersion    int64
	DocString       string
	Graph           *GraphProto
}

func (m *ModelProto) GetIrVersion() int64 {
	if m == nil {
		return 0
	}
	return m.IrVersion
}

func (m *ModelProto) GetOpsetImport() []*OperatorSetIdProto {
	if m == nil {
		return nil
	}
	return m.OpsetImport
}

func (m *ModelProto) GetProducerName() string {
	if m == nil {
		return ""
	}
	return m.ProducerName
}

func (m *ModelProto) GetProducerVersion() string {
	if m == nil {
		return ""
	}
	return m.ProducerVersion
}

func (m *ModelProto) GetGraph() *GraphProto {
	if m == nil {
		return nil
	}
	return m.Graph
}

// OperatorSetIdProto names an operator set the model depends on.
type OperatorSetIdProto struct {
	Domain  string
	Version int64
}

func (m *OperatorSetIdProto) GetDomain() string {
	if m == nil {
		return ""
	}
	return m.Domain
}

func (m *OperatorSetIdProto) GetVersion() int64 {
	if m == nil {
		return 0
	}
	return m.Version
}

// GraphProto is a computation graph: nodes in topological order plus the
// declarations of its constant, input, output and intermediate values.
type GraphProto struct {
	Node        []*NodeProto
	Name        string
	Initializer []*TensorProto
	DocString   string
	Input       []*ValueInfoProto
	Output      []*ValueInfoProto
	ValueInfo   []*ValueInfoProto
}

func (m *GraphProto) GetNode() []*NodeProto {
	if m == nil {
		return nil
	}
	return m.Node
}

func (m *GraphProto) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *GraphProto) GetInitializer() []*TensorProto {
	if m == nil {
		return nil
	}
	return m.Initializer
}

func (m *GraphProto) GetInput() []*ValueInfoProto {
	if m == nil {
		return nil
	}
	return m.Input
}

func (m *GraphProto) GetOutput() []*ValueInfoProto {
	if m == nil {
		return nil
	}
	return m.Output
}

func (m *GraphProto) GetValueInfo() []*ValueInfoProto {
	if m == nil {
		return nil
	}
	return m.ValueInfo
}

// NodeProto is one operator invocation.
type NodeProto struct {
	Input     []string
	Output    []string
	Name      string
	OpType    string
	Domain    string
	Attribute []*AttributeProto
	DocString string
}

func (m *NodeProto) GetInput() []string {
	if m == nil {
		return nil
	}
	return m.Input
}

func (m *NodeProto) GetOutput() []string {
	if m == nil {
		return nil
	}
	return m.Output
}

func (m *NodeProto) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *NodeProto) GetOpType() string {
	if m == nil {
		return ""
	}
	return m.OpType
}

func (m *NodeProto) GetDomain() string {
	if m == nil {
		return ""
	}
	return m.Domain
}

func (m *NodeProto) GetAttribute() []*AttributeProto {
	if m == nil {
		return nil
	}
	return m.Attribute
}

// AttributeProto is a named static parameter of a node. Only scalar and list
// payloads are decoded; tensor, graph and type payloads keep just their kind.
type AttributeProto struct {
	Name      string
	DocString string
	Type      AttributeProto_AttributeType
	F         float32
	I         int64
	S         []byte
	Floats    []float32
	Ints      []int64
	Strings   [][]byte
}

func (m *AttributeProto) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *AttributeProto) GetType() AttributeProto_AttributeType {
	if m == nil {
		return AttributeProto_UNDEFINED
	}
	return m.Type
}

func (m *AttributeProto) GetF() float32 {
	if m == nil {
		return 0
	}
	return m.F
}

func (m *AttributeProto) GetI() int64 {
	if m == nil {
		return 0
	}
	return m.I
}

func (m *AttributeProto) GetS() []byte {
	if m == nil {
		return nil
	}
	return m.S
}

func (m *AttributeProto) GetFloats() []float32 {
	if m == nil {
		return nil
	}
	return m.Floats
}

func (m *AttributeProto) GetInts() []int64 {
	if m == nil {
		return nil
	}
	return m.Ints
}

func (m *AttributeProto) GetStrings() [][]byte {
	if m == nil {
		return nil
	}
	return m.Strings
}

// TensorProto is a constant tensor. Payload fields are not decoded.
type TensorProto struct {
	Dims      []int64
	DataType  int32
	Name      string
	DocString string
}

func (m *TensorProto) GetDims() []int64 {
	if m == nil {
		return nil
	}
	return m.Dims
}

func (m *TensorProto) GetDataType() int32 {
	if m == nil {
		return 0
	}
	return m.DataType
}

func (m *TensorProto) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// ValueInfoProto declares the type of a named value.
type ValueInfoProto struct {
	Name      string
	Type      *TypeProto
	DocString string
}

func (m *ValueInfoProto) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *ValueInfoProto) GetType() *TypeProto {
	if m == nil {
		return nil
	}
	return m.Type
}

// TypeProto describes a value type. Only tensor types are decoded; sequence,
// map, optional and sparse types leave TensorType nil.
type TypeProto struct {
	TensorType *TypeProto_Tensor
	Denotation string
}

func (m *TypeProto) GetTensorType() *TypeProto_Tensor {
	if m == nil {
		return nil
	}
	return m.TensorType
}

// TypeProto_Tensor is a dense tensor type.
type TypeProto_Tensor struct {
	ElemType int32
	Shape    *TensorShapeProto
}

func (m *TypeProto_Tensor) GetElemType() int32 {
	if m == nil {
		return 0
	}
	return m.ElemType
}

func (m *TypeProto_Tensor) GetShape() *TensorShapeProto {
	if m == nil {
		return nil
	}
	return m.Shape
}

// TensorShapeProto is a possibly symbolic tensor shape.
type TensorShapeProto struct {
	Dim []*TensorShapeProto_Dimension
}

func (m *TensorShapeProto) GetDim() []*TensorShapeProto_Dimension {
	if m == nil {
		return nil
	}
	return m.Dim
}

// TensorShapeProto_Dimension holds either a fixed size or a symbolic name.
type TensorShapeProto_Dimension struct {
	DimValue   int64
	DimParam   string
	Denotation string
}

func (m *TensorShapeProto_Dimension) GetDimValue() int64 {
	if m == nil {
		return 0
	}
	return m.DimValue
}

func (m *TensorShapeProto_Dimension) GetDimParam() string {
	if m == nil {
		return ""
	}
	return m.DimParam
}
