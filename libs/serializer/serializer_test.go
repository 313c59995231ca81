package serializer

import (
	"errors"
	"testing"

	"github.com/hyp3rd/hyperprobe/internal/sentinel"
)

type snapshot struct {
	Name    string `json:"name"`
	Cycles  uint64 `json:"cycles"`
	Samples uint64 `json:"samples"`
}

func TestNew_RoundTrip(t *testing.T) {
	in := snapshot{Name: "encode", Cycles: 1234, Samples: 7}

	for _, name := range []string{"json", "msgpack", "cbor"} {
		ser, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) error: %v", name, err)
		}

		data, err := ser.Marshal(in)
		if err != nil {
			t.Fatalf("%s Marshal error: %v", name, err)
		}

		var out snapshot
		if err := ser.Unmarshal(data, &out); err != nil {
			t.Fatalf("%s Unmarshal error: %v", name, err)
		}

		if out != in {
			t.Errorf("%s round trip = %+v, want %+v", name, out, in)
		}
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("protobuf")
	if !errors.Is(err, sentinel.ErrSerializerNotFound) {
		t.Errorf("New(protobuf) error = %v, want ErrSerializerNotFound", err)
	}

	_, err = New("")
	if !errors.Is(err, sentinel.ErrParamCannotBeEmpty) {
		t.Errorf("New(\"\") error = %v, want ErrParamCannotBeEmpty", err)
	}
}

func TestRegistry_CustomSerializer(t *testing.T) {
	registry := NewRegistry()
	registry.Register("custom", func() (Serializer, error) { return &JSONSerializer{}, nil })

	ser, err := registry.New("custom")
	if err != nil {
		t.Fatalf("New(custom) error: %v", err)
	}

	if ser == nil {
		t.Fatal("New(custom) returned nil serializer")
	}
}
