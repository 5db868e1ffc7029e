package onnx

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Unmarshal parses a serialized ModelProto into m, replacing its contents.
func Unmarshal(b []byte, m *ModelProto) error {
	*m = ModelProto{}
	if err := m.unmarshal(b); err != nil {
		return fmt.Errorf("onnx: %w", err)
	}
	return nil
}

type message interface {
	unmarshal(b []byte) error
}

// walk calls fn for every field in b. fn returns the number of bytes of the
// field value it consumed, or a negative protowire error code.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func skip(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return protowire.ConsumeFieldValue(num, typ, b), nil
}

// consumeMessage decodes a length-delimited sub-message.
func consumeMessage[T any, P interface {
	*T
	message
}](b []byte) (P, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, n, nil
	}
	msg := P(new(T))
	if err := msg.unmarshal(v); err != nil {
		return nil, n, err
	}
	return msg, n, nil
}

// consumeInt64s accepts both the packed and the unpacked encoding.
func consumeInt64s(typ protowire.Type, b []byte, dst []int64) ([]int64, int) {
	if typ == protowire.VarintType {
		v, n := protowire.ConsumeVarint(b)
		return append(dst, int64(v)), n
	}
	buf, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return dst, n
	}
	for len(buf) > 0 {
		v, m := protowire.ConsumeVarint(buf)
		if m < 0 {
			return dst, m
		}
		dst = append(dst, int64(v))
		buf = buf[m:]
	}
	return dst, n
}

func consumeFloats(typ protowire.Type, b []byte, dst []float32) ([]float32, int) {
	if typ == protowire.Fixed32Type {
		v, n := protowire.ConsumeFixed32(b)
		return append(dst, math.Float32frombits(v)), n
	}
	buf, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return dst, n
	}
	for len(buf) > 0 {
		v, m := protowire.ConsumeFixed32(buf)
		if m < 0 {
			return dst, m
		}
		dst = append(dst, math.Float32frombits(v))
		buf = buf[m:]
	}
	return dst, n
}

func isInts(typ protowire.Type) bool {
	return typ == protowire.VarintType || typ == protowire.BytesType
}

func isFloats(typ protowire.Type) bool {
	return typ == protowire.Fixed32Type || typ == protowire.BytesType
}

func (m *ModelProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.IrVersion = int64(v)
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.ProducerName = v
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.ProducerVersion = v
			return n, nil
		case num == 4 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Domain = v
			return n, nil
		case num == 5 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.ModelVersion = int64(v)
			return n, nil
		case num == 6 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.DocString = v
			return n, nil
		case num == 7 && typ == protowire.BytesType:
			g, n, err := consumeMessage[GraphProto](b)
			m.Graph = g
			return n, err
		case num == 8 && typ == protowire.BytesType:
			op, n, err := consumeMessage[OperatorSetIdProto](b)
			if op != nil {
				m.OpsetImport = append(m.OpsetImport, op)
			}
			return n, err
		}
		return skip(num, typ, b)
	})
}

func (m *OperatorSetIdProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Domain = v
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Version = int64(v)
			return n, nil
		}
		return skip(num, typ, b)
	})
}

func (m *GraphProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return skip(num, typ, b)
		}
		switch num {
		case 1:
			node, n, err := consumeMessage[NodeProto](b)
			if node != nil {
				m.Node = append(m.Node, node)
			}
			return n, err
		case 2:
			v, n := protowire.ConsumeString(b)
			m.Name = v
			return n, nil
		case 5:
			t, n, err := consumeMessage[TensorProto](b)
			if t != nil {
				m.Initializer = append(m.Initializer, t)
			}
			return n, err
		case 10:
			v, n := protowire.ConsumeString(b)
			m.DocString = v
			return n, nil
		case 11, 12, 13:
			info, n, err := consumeMessage[ValueInfoProto](b)
			if info == nil {
				return n, err
			}
			switch num {
			case 11:
				m.Input = append(m.Input, info)
			case 12:
				m.Output = append(m.Output, info)
			default:
				m.ValueInfo = append(m.ValueInfo, info)
			}
			return n, err
		}
		return skip(num, typ, b)
	})
}

func (m *NodeProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return skip(num, typ, b)
		}
		switch num {
		case 1:
			v, n := protowire.ConsumeString(b)
			m.Input = append(m.Input, v)
			return n, nil
		case 2:
			v, n := protowire.ConsumeString(b)
			m.Output = append(m.Output, v)
			return n, nil
		case 3:
			v, n := protowire.ConsumeString(b)
			m.Name = v
			return n, nil
		case 4:
			v, n := protowire.ConsumeString(b)
			m.OpType = v
			return n, nil
		case 5:
			attr, n, err := consumeMessage[AttributeProto](b)
			if attr != nil {
				m.Attribute = append(m.Attribute, attr)
			}
			return n, err
		case 6:
			v, n := protowire.ConsumeString(b)
			m.DocString = v
			return n, nil
		case 7:
			v, n := protowire.ConsumeString(b)
			m.Domain = v
			return n, nil
		}
		return skip(num, typ, b)
	})
}

func (m *AttributeProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Name = v
			return n, nil
		case num == 2 && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			m.F = math.Float32frombits(v)
			return n, nil
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.I = int64(v)
			return n, nil
		case num == 4 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			m.S = append([]byte(nil), v...)
			return n, nil
		case num == 7 && isFloats(typ):
			var n int
			m.Floats, n = consumeFloats(typ, b, m.Floats)
			return n, nil
		case num == 8 && isInts(typ):
			var n int
			m.Ints, n = consumeInt64s(typ, b, m.Ints)
			return n, nil
		case num == 9 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			m.Strings = append(m.Strings, append([]byte(nil), v...))
			return n, nil
		case num == 13 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.DocString = v
			return n, nil
		case num == 20 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Type = AttributeProto_AttributeType(int32(v))
			return n, nil
		}
		return skip(num, typ, b)
	})
}

func (m *TensorProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && isInts(typ):
			var n int
			m.Dims, n = consumeInt64s(typ, b, m.Dims)
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.DataType = int32(v)
			return n, nil
		case num == 8 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Name = v
			return n, nil
		case num == 12 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.DocString = v
			return n, nil
		}
		return skip(num, typ, b)
	})
}

func (m *ValueInfoProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return skip(num, typ, b)
		}
		switch num {
		case 1:
			v, n := protowire.ConsumeString(b)
			m.Name = v
			return n, nil
		case 2:
			t, n, err := consumeMessage[TypeProto](b)
			m.Type = t
			return n, err
		case 3:
			v, n := protowire.ConsumeString(b)
			m.DocString = v
			return n, nil
		}
		return skip(num, typ, b)
	})
}

func (m *TypeProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			t, n, err := consumeMessage[TypeProto_Tensor](b)
			m.TensorType = t
			return n, err
		case num == 6 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Denotation = v
			return n, nil
		}
		return skip(num, typ, b)
	})
}

func (m *TypeProto_Tensor) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.ElemType = int32(v)
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			s, n, err := consumeMessage[TensorShapeProto](b)
			m.Shape = s
			return n, err
		}
		return skip(num, typ, b)
	})
}

func (m *TensorShapeProto) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			d, n, err := consumeMessage[TensorShapeProto_Dimension](b)
			if d != nil {
				m.Dim = append(m.Dim, d)
			}
			return n, err
		}
		return skip(num, typ, b)
	})
}

func (m *TensorShapeProto_Dimension) unmarshal(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.DimValue = int64(v)
			return n, nil
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.DimParam = v
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Denotation = v
			return n, nil
		}
		return skip(num, typ, b)
	})
}
