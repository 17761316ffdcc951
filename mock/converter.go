package mock

import "github.com/fwojciec/patdoc"

var _ patdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of patdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
