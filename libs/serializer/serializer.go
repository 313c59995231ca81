// Package serializer provides the snapshot encoders used by export sinks
// and the management HTTP surface. Serialization happens strictly off the
// measurement hot path.
package serializer

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperprobe/internal/sentinel"
)

// Serializer turns probe snapshots into bytes for an export surface and
// back.
type Serializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Registry manages serializer constructors by name.
type Registry struct {
	serializers map[string]func() (Serializer, error)
}

// NewRegistry creates a serializer registry with the default encoders
// pre-registered: "json", "msgpack", and "cbor".
func NewRegistry() *Registry {
	registry := &Registry{
		serializers: make(map[string]func() (Serializer, error)),
	}

	registry.Register("json", func() (Serializer, error) { return &JSONSerializer{}, nil })
	registry.Register("msgpack", func() (Serializer, error) { return &MsgpackSerializer{}, nil })
	registry.Register("cbor", func() (Serializer, error) { return NewCBORSerializer(), nil })

	return registry
}

// Register registers a new serializer constructor under the given name.
func (r *Registry) Register(name string, createFunc func() (Serializer, error)) {
	r.serializers[name] = createFunc
}

// New creates a serializer by name.
func (r *Registry) New(name string) (Serializer, error) {
	if name == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "serializer name")
	}

	createFunc, ok := r.serializers[name]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrSerializerNotFound, name)
	}

	return createFunc()
}

// New creates a serializer by name using a registry instance with the
// default encoders.
func New(name string) (Serializer, error) {
	return NewRegistry().New(name)
}
