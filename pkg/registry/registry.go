// Package registry translates ONNX element type and attribute kind codes
// into the names used in inspection reports.
package registry

import (
	"errors"
	"fmt"

	"github.com/ibelem/onnx-model/internal/onnx"
)

// ErrUnknownTypeCode is matched by every lookup failure. A code outside the
// tables usually means the model targets a newer ONNX release than the
// registry knows about.
var ErrUnknownTypeCode = errors.New("unknown type code")

// UnknownTypeCodeError reports a code missing from one of the tables.
type UnknownTypeCodeError struct {
	Table string
	Code  int32
}

func (e *UnknownTypeCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %d", e.Table, e.Code)
}

func (e *UnknownTypeCodeError) Is(target error) bool {
	return target == ErrUnknownTypeCode
}

const (
	elemTable = "element type"
	attrTable = "attribute kind"
)

// elemTypeNames holds the report name of every tensor element type.
var elemTypeNames = map[onnx.TensorProto_DataType]string{
	onnx.TensorProto_UNDEFINED:      "undefined",
	onnx.TensorProto_FLOAT:          "float32",
	onnx.TensorProto_UINT8:          "uint8",
	onnx.TensorProto_INT8:           "int8",
	onnx.TensorProto_UINT16:         "uint16",
	onnx.TensorProto_INT16:          "int16",
	onnx.TensorProto_INT32:          "int32",
	onnx.TensorProto_INT64:          "int64",
	onnx.TensorProto_STRING:         "string",
	onnx.TensorProto_BOOL:           "bool",
	onnx.TensorProto_FLOAT16:        "float16",
	onnx.TensorProto_DOUBLE:         "double",
	onnx.TensorProto_UINT32:         "uint32",
	onnx.TensorProto_UINT64:         "uint64",
	onnx.TensorProto_COMPLEX64:      "COMPLEX64",
	onnx.TensorProto_COMPLEX128:     "COMPLEX128",
	onnx.TensorProto_BFLOAT16:       "bfloat16",
	onnx.TensorProto_FLOAT8E4M3FN:   "FLOAT8E4M3FN",
	onnx.TensorProto_FLOAT8E4M3FNUZ: "FLOAT8E4M3FNUZ",
	onnx.TensorProto_FLOAT8E5M2:     "FLOAT8E5M2",
	onnx.TensorProto_FLOAT8E5M2FNUZ: "FLOAT8E5M2FNUZ",
}

// attrKindNames collapses attribute kinds to the element they carry, with a
// [] suffix for list kinds. GRAPHS is reported as "graph", not "graph[]".
var attrKindNames = map[onnx.AttributeProto_AttributeType]string{
	onnx.AttributeProto_UNDEFINED:      "undefined",
	onnx.AttributeProto_FLOAT:          "float32",
	onnx.AttributeProto_INT:            "int64",
	onnx.AttributeProto_STRING:         "string",
	onnx.AttributeProto_TENSOR:         "tensor",
	onnx.AttributeProto_GRAPH:          "graph",
	onnx.AttributeProto_FLOATS:         "float32[]",
	onnx.AttributeProto_INTS:           "int64[]",
	onnx.AttributeProto_STRINGS:        "string[]",
	onnx.AttributeProto_TENSORS:        "tensor[]",
	onnx.AttributeProto_GRAPHS:         "graph",
	onnx.AttributeProto_SPARSE_TENSOR:  "tensor",
	onnx.AttributeProto_SPARSE_TENSORS: "tensor[]",
	onnx.AttributeProto_TYPE_PROTO:     "type",
	onnx.AttributeProto_TYPE_PROTOS:    "type[]",
}

// ElemTypeName returns the report name of a tensor element type code.
func ElemTypeName(code int32) (string, error) {
	name, ok := elemTypeNames[onnx.TensorProto_DataType(code)]
	if !ok {
		return "", &UnknownTypeCodeError{Table: elemTable, Code: code}
	}
	return name, nil
}

// AttrKindName returns the report descriptor of an attribute kind code.
func AttrKindName(code int32) (string, error) {
	name, ok := attrKindNames[onnx.AttributeProto_AttributeType(code)]
	if !ok {
		return "", &UnknownTypeCodeError{Table: attrTable, Code: code}
	}
	return name, nil
}
