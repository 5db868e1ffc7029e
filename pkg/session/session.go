// Package session reports the input and output ports an inference runtime
// sees when it opens a model.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrCreation is matched by every session construction failure.
var ErrCreation = errors.New("session creation failed")

// CreationError is returned when a model cannot be opened as a session.
type CreationError struct {
	Path string
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create session for %s: %v", e.Path, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

func (e *CreationError) Is(target error) bool {
	return target == ErrCreation
}

// Port is a named model input or output with the runtime's type descriptor,
// for example "tensor(float)". Non-tensor ports carry only the outer value
// kind, such as a sequence or map: ONNX Runtime's port info does not expose
// the element types nested inside them.
type Port struct {
	Name string
	Type string
}

// Signature lists the model's ports in declaration order.
type Signature struct {
	Inputs  []Port
	Outputs []Port
}

// Introspector opens a model as a session and returns its signature.
type Introspector interface {
	Introspect(ctx context.Context, modelPath string) (*Signature, error)
}

// tensorTypes names tensor element types the way runtimes print them.
var tensorTypes = map[int32]string{
	0:  "undefined",
	1:  "float",
	2:  "uint8",
	3:  "int8",
	4:  "uint16",
	5:  "int16",
	6:  "int32",
	7:  "int64",
	8:  "string",
	9:  "bool",
	10: "float16",
	11: "double",
	12: "uint32",
	13: "uint64",
	14: "complex64",
	15: "complex128",
	16: "bfloat16",
	17: "float8e4m3fn",
	18: "float8e4m3fnuz",
	19: "float8e5m2",
	20: "float8e5m2fnuz",
}

// TensorType returns the descriptor of a tensor port with the given element
// type code.
func TensorType(elemType int32) string {
	name, ok := tensorTypes[elemType]
	if !ok {
		name = fmt.Sprintf("unknown(%d)", elemType)
	}
	return "tensor(" + name + ")"
}

// FormatPorts renders ports as a name to type mapping, e.g.
// {'input': 'tensor(float)'}. Sequence and map ports show their value kind
// only, never the nested form seq(tensor(float)).
func FormatPorts(ports []Port) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range ports {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "'%s': '%s'", p.Name, p.Type)
	}
	sb.WriteByte('}')
	return sb.String()
}
