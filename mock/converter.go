package mock

import "github.com/gitduk/rustdocs"

var _ rustdocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of rustdocs.Converter.
type Converter struct {
	ConvertFn func(raw []byte) (*rustdocs.ConvertResult, error)
}

func (c *Converter) Convert(raw []byte) (*rustdocs.ConvertResult, error) {
	return c.ConvertFn(raw)
}
