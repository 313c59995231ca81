package serializer

import (
	"github.com/goccy/go-json"
)

// JSONSerializer encodes snapshots as JSON.
type JSONSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (s *JSONSerializer) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes the given byte slice into the given value.
func (s *JSONSerializer) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
