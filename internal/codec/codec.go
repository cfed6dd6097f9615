// Package codec holds the swappable JSON encode/decode functions the engine
// builds on. Kept separate from the jsonschema package so the default codec
// (goccy/go-json) can be replaced by an embedder without touching engine
// code.
package codec

import (
	goccy "github.com/goccy/go-json"
)

// Marshaler mirrors encoding/json.Marshal's signature.
type Marshaler func(any) ([]byte, error)

// Unmarshaler mirrors encoding/json.Unmarshal's signature.
type Unmarshaler func([]byte, any) error

var (
	marshaler   Marshaler   = goccy.Marshal
	unmarshaler Unmarshaler = goccy.Unmarshal
)

// SetMarshaler replaces the package-level Marshal implementation.
func SetMarshaler(m Marshaler) { marshaler = m }

// SetUnmarshaler replaces the package-level Unmarshal implementation.
func SetUnmarshaler(u Unmarshaler) { unmarshaler = u }

// Marshal encodes v using the currently configured Marshaler.
func Marshal(v any) ([]byte, error) { return marshaler(v) }

// Unmarshal decodes data into v using the currently configured Unmarshaler.
func Unmarshal(data []byte, v any) error { return unmarshaler(data, v) }
