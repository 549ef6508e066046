package binding

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Codec converts between a typed value and the UTF-8 text stored in the
// backend. The default is JSON; bindings accept a custom codec for values
// with their own wire form.
type Codec[T any] interface {
	Encode(value T) (string, error)
	Decode(text string) (T, error)
}

// JSONCodec encodes values with encoding/json. Decode failures classify
// as ErrDataCorrupted since they mean the stored text is not what this
// binding ever wrote.
type JSONCodec[T any] struct{}

// Encode marshals the value to JSON text.
func (JSONCodec[T]) Encode(value T) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}
	return string(data), nil
}

// Decode unmarshals JSON text into a value of type T.
func (JSONCodec[T]) Decode(text string) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return value, fmt.Errorf("unparseable stored text %.40q: %w", text, types.ErrDataCorrupted)
	}
	return value, nil
}
