package encoding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mvp-joe/export-diff/internal/diff"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrSerialization is matched by every encoding failure.
	ErrSerialization = errors.New("serialization error")

	// ErrUnknownFormat indicates an output format the encoder does not support.
	ErrUnknownFormat = errors.New("unknown output format")
)

// SerializationError wraps an encoder failure.
type SerializationError struct {
	Format string
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

// Encode serializes change records as a list of {name, change} objects.
// An empty result encodes as an empty list, never null. Pretty only affects JSON.
func Encode(records []diff.ChangeRecord, format string, pretty bool) ([]byte, error) {
	if records == nil {
		records = []diff.ChangeRecord{}
	}
	return encodeValue(records, format, pretty)
}

// EncodeValue serializes any result value using the same format rules as Encode.
func EncodeValue(v any, format string, pretty bool) ([]byte, error) {
	return encodeValue(v, format, pretty)
}

func encodeValue(v any, format string, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		var (
			data []byte
			err  error
		)
		if pretty {
			data, err = json.MarshalIndent(v, "", "  ")
		} else {
			data, err = json.Marshal(v)
		}
		if err != nil {
			return nil, &SerializationError{Format: FormatJSON, Err: err}
		}
		return data, nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, &SerializationError{Format: FormatYAML, Err: err}
		}
		if err := enc.Close(); err != nil {
			return nil, &SerializationError{Format: FormatYAML, Err: err}
		}
		return buf.Bytes(), nil

	default:
		return nil, &SerializationError{Format: format, Err: ErrUnknownFormat}
	}
}
