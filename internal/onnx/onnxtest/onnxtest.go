// Package onnxtest encodes ONNX models for use as test fixtures.
package onnxtest

import (
	"math"

	"github.com/ibelem/onnx-model/internal/onnx"
	"google.golang.org/protobuf/encoding/protowire"
)

// Marshal serializes m. Repeated scalars are written packed; empty optional
// fields are omitted.
func Marshal(m *onnx.ModelProto) []byte {
	return appendModel(nil, m)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendPackedInt64s(b []byte, num protowire.Number, vs []int64) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	return appendMessage(b, num, packed)
}

func appendModel(b []byte, m *onnx.ModelProto) []byte {
	if m == nil {
		return b
	}
	b = appendVarint(b, 1, uint64(m.IrVersion))
	b = appendString(b, 2, m.ProducerName)
	b = appendString(b, 3, m.ProducerVersion)
	b = appendString(b, 4, m.Domain)
	b = appendVarint(b, 5, uint64(m.ModelVersion))
	b = appendString(b, 6, m.DocString)
	if m.Graph != nil {
		b = appendMessage(b, 7, appendGraph(nil, m.Graph))
	}
	for _, op := range m.OpsetImport {
		var sub []byte
		sub = appendString(sub, 1, op.GetDomain())
		sub = appendVarint(sub, 2, uint64(op.GetVersion()))
		b = appendMessage(b, 8, sub)
	}
	return b
}

func appendGraph(b []byte, m *onnx.GraphProto) []byte {
	for _, node := range m.Node {
		b = appendMessage(b, 1, appendNode(nil, node))
	}
	b = appendString(b, 2, m.Name)
	for _, t := range m.Initializer {
		b = appendMessage(b, 5, appendTensor(nil, t))
	}
	b = appendString(b, 10, m.DocString)
	for _, info := range m.Input {
		b = appendMessage(b, 11, appendValueInfo(nil, info))
	}
	for _, info := range m.Output {
		b = appendMessage(b, 12, appendValueInfo(nil, info))
	}
	for _, info := range m.ValueInfo {
		b = appendMessage(b, 13, appendValueInfo(nil, info))
	}
	return b
}

func appendNode(b []byte, m *onnx.NodeProto) []byte {
	// Empty input and output names mark omitted optional operands, so every
	// entry is written.
	for _, s := range m.Input {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	for _, s := range m.Output {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	b = appendString(b, 3, m.Name)
	b = appendString(b, 4, m.OpType)
	for _, attr := range m.Attribute {
		b = appendMessage(b, 5, appendAttribute(nil, attr))
	}
	b = appendString(b, 6, m.DocString)
	b = appendString(b, 7, m.Domain)
	return b
}

func appendAttribute(b []byte, m *onnx.AttributeProto) []byte {
	b = appendString(b, 1, m.Name)
	if m.F != 0 {
		b = protowire.AppendTag(b, 2, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(m.F))
	}
	b = appendVarint(b, 3, uint64(m.I))
	if len(m.S) > 0 {
		b = appendMessage(b, 4, m.S)
	}
	if len(m.Floats) > 0 {
		var packed []byte
		for _, f := range m.Floats {
			packed = protowire.AppendFixed32(packed, math.Float32bits(f))
		}
		b = appendMessage(b, 7, packed)
	}
	b = appendPackedInt64s(b, 8, m.Ints)
	for _, s := range m.Strings {
		b = appendMessage(b, 9, s)
	}
	b = appendString(b, 13, m.DocString)
	b = appendVarint(b, 20, uint64(m.Type))
	return b
}

func appendTensor(b []byte, m *onnx.TensorProto) []byte {
	b = appendPackedInt64s(b, 1, m.Dims)
	b = appendVarint(b, 2, uint64(m.DataType))
	b = appendString(b, 8, m.Name)
	b = appendString(b, 12, m.DocString)
	return b
}

func appendValueInfo(b []byte, m *onnx.ValueInfoProto) []byte {
	b = appendString(b, 1, m.Name)
	if m.Type != nil {
		b = appendMessage(b, 2, appendType(nil, m.Type))
	}
	b = appendString(b, 3, m.DocString)
	return b
}

func appendType(b []byte, m *onnx.TypeProto) []byte {
	if t := m.TensorType; t != nil {
		var sub []byte
		sub = appendVarint(sub, 1, uint64(t.ElemType))
		if t.Shape != nil {
			var shape []byte
			for _, d := range t.Shape.Dim {
				var dim []byte
				dim = appendVarint(dim, 1, uint64(d.GetDimValue()))
				dim = appendString(dim, 2, d.GetDimParam())
				dim = appendString(dim, 3, d.Denotation)
				shape = appendMessage(shape, 1, dim)
			}
			sub = appendMessage(sub, 2, shape)
		}
		b = appendMessage(b, 1, sub)
	}
	b = appendString(b, 6, m.Denotation)
	return b
}
