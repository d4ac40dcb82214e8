package utils

import (
	"io"

	"github.com/bytedance/sonic"
)

// Ptr returns a pointer to v. Handy for optional wire fields.
func Ptr[T any](v T) *T {
	return &v
}

// DecodeJSON reads r to completion and unmarshals the bytes into target.
func DecodeJSON(r io.Reader, target any) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return sonic.Unmarshal(buf, target)
}
