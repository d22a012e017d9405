package converter

import (
	"convbot/internal/core/port"
	"fmt"
)

const (
	BackendNative = "native"
	BackendMagick = "magick"
)

// New builds the converter for the configured backend.
func New(backend string, jpegQuality int) (port.ImageConverter, error) {
	switch backend {
	case "", BackendNative:
		return NewNativeConverter(jpegQuality), nil
	case BackendMagick:
		m, err := NewMagickConverter()
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown converter backend %q", backend)
	}
}
