package calculator

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the calculator.proto messages:
//
//	message CalculationRequest  { double a = 1; double b = 2; Operation operation = 3; }
//	message CalculationResponse { double result = 1; string error = 2; }
const (
	fieldRequestA         protowire.Number = 1
	fieldRequestB         protowire.Number = 2
	fieldRequestOperation protowire.Number = 3

	fieldResponseResult protowire.Number = 1
	fieldResponseError  protowire.Number = 2
)

// MarshalBinary encodes r in protobuf wire format. Zero-valued fields are
// omitted, as proto3 does.
func (r Request) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendDouble(b, fieldRequestA, r.A)
	b = appendDouble(b, fieldRequestB, r.B)
	if r.Operation != 0 {
		b = protowire.AppendTag(b, fieldRequestOperation, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(r.Operation)))
	}
	return b, nil
}

// UnmarshalBinary decodes a protobuf-encoded request into r. Unknown fields
// are skipped; an operation outside the known range is kept as-is.
func (r *Request) UnmarshalBinary(data []byte) error {
	*r = Request{}
	return consumeFields(data, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == fieldRequestA && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			r.A = math.Float64frombits(v)
			return n
		case num == fieldRequestB && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			r.B = math.Float64frombits(v)
			return n
		case num == fieldRequestOperation && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			r.Operation = Operation(int32(v))
			return n
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

// MarshalBinary encodes r in protobuf wire format.
func (r Response) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendDouble(b, fieldResponseResult, r.Result)
	if r.Error != "" {
		b = protowire.AppendTag(b, fieldResponseError, protowire.BytesType)
		b = protowire.AppendString(b, r.Error)
	}
	return b, nil
}

func (r *Response) UnmarshalBinary(data []byte) error {
	*r = Response{}
	return consumeFields(data, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == fieldResponseResult && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			r.Result = math.Float64frombits(v)
			return n
		case num == fieldResponseError && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			r.Error = v
			return n
		}
		return protowire.ConsumeFieldValue(num, typ, b)
	})
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	bits := math.Float64bits(v)
	if bits == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, bits)
}

// consumeFields walks every field in data, handing each value to fn, which
// returns the bytes it consumed or a negative protowire error code.
func consumeFields(data []byte, fn func(protowire.Number, protowire.Type, []byte) int) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("decode tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		n = fn(num, typ, data)
		if n < 0 {
			return fmt.Errorf("decode field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return nil
}
