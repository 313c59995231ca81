package serializer

import (
	"github.com/shamaton/msgpack/v2"
)

// MsgpackSerializer encodes snapshots as msgpack for compact wire payloads.
type MsgpackSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (s *MsgpackSerializer) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal deserializes the given byte slice into the given value.
func (s *MsgpackSerializer) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
