package serializer

import (
	"github.com/ugorji/go/codec"
)

// CBORSerializer encodes snapshots as CBOR.
type CBORSerializer struct {
	handle codec.CborHandle
}

// NewCBORSerializer creates a CBOR serializer.
func NewCBORSerializer() *CBORSerializer {
	return &CBORSerializer{}
}

// Marshal serializes the given value into a byte slice.
func (s *CBORSerializer) Marshal(v any) ([]byte, error) {
	var buf []byte

	err := codec.NewEncoderBytes(&buf, &s.handle).Encode(v)
	if err != nil {
		return nil, err
	}

	return buf, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (s *CBORSerializer) Unmarshal(data []byte, v any) error {
	return codec.NewDecoderBytes(data, &s.handle).Decode(v)
}
