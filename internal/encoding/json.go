// Package encoding provides the JSON and file helpers shared by the
// settings layer and the CLI.
package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ParseJSON unmarshals JSON data into the provided type.
// Unknown fields are ignored.
func ParseJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &result, nil
}

// DecodeJSON reads a single JSON value from r.
func DecodeJSON[T any](r io.Reader) (*T, error) {
	var result T
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	return &result, nil
}

// ToJSON marshals a value to compact JSON bytes.
func ToJSON[T any](value T) ([]byte, error) {
	return json.Marshal(value)
}

// ToJSONIndent marshals a value to 2-space indented JSON with a trailing newline,
// the form used for human-readable exports.
func ToJSONIndent[T any](value T) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return buf.Bytes(), nil
}
