package types

import (
	"encoding/json"
	"fmt"
)

// Size is a byte count that marshals as a plain JSON number.
type Size struct{ uint32 }

func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.uint32)
}

func (s *Size) UnmarshalJSON(b []byte) error {
	var v uint32
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Size: %w", b, err)
	}
	s.uint32 = v
	return nil
}

// UnmarshalYAML accepts a plain integer.
func (s *Size) UnmarshalYAML(unmarshal func(any) error) error {
	var v uint32
	if err := unmarshal(&v); err != nil {
		return err
	}
	s.uint32 = v
	return nil
}

// Bytes returns the size in bytes.
func (s Size) Bytes() uint32 {
	return s.uint32
}

func NewSize(v uint32) Size {
	return Size{v}
}

func NewSizeKibi(v uint32) Size {
	return Size{v * 1024}
}

func NewSizeMebi(v uint32) Size {
	return Size{v * 1024 * 1024}
}

// MarshalYAML writes a plain integer.
func (s Size) MarshalYAML() (any, error) {
	return s.uint32, nil
}
