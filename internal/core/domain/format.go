package domain

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatJPEG Format = "JPEG"
	FormatPNG  Format = "PNG"
	FormatWEBP Format = "WEBP"
	FormatBMP  Format = "BMP"
	FormatTIFF Format = "TIFF"
)

const convertedBaseName = "converted"

var formats = []Format{FormatJPEG, FormatPNG, FormatWEBP, FormatBMP, FormatTIFF}

// Formats returns the supported output formats in menu order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat matches a format name case-insensitively against the catalog.
func ParseFormat(name string) (Format, error) {
	candidate := Format(strings.ToUpper(strings.TrimSpace(name)))
	for _, f := range formats {
		if f == candidate {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

func (f Format) Extension() string {
	return strings.ToLower(string(f))
}

// FileName is the name under which a converted image is returned to the user.
func (f Format) FileName() string {
	return convertedBaseName + "." + f.Extension()
}
