package converter

import (
	"bytes"
	"context"
	"convbot/internal/core/domain"
	"fmt"
	"image/jpeg"
	"image/png"

	"github.com/HugoSmits86/nativewebp"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const DefaultJPEGQuality = 90

// NativeConverter re-encodes images with pure Go codecs. JPEG output of
// images with transparency is flattened onto white; WEBP output is lossless.
type NativeConverter struct {
	jpegQuality int
}

func NewNativeConverter(jpegQuality int) *NativeConverter {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}

	return &NativeConverter{jpegQuality: jpegQuality}
}

func (c *NativeConverter) Convert(ctx context.Context, data []byte, format domain.Format) (*domain.ConvertedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	img, source, err := decode(data)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("source", source).Str("target", string(format)).
		Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("converting image")

	var buf bytes.Buffer
	switch format {
	case domain.FormatJPEG:
		err = jpeg.Encode(&buf, flatten(img), &jpeg.Options{Quality: c.jpegQuality})
	case domain.FormatPNG:
		err = png.Encode(&buf, img)
	case domain.FormatWEBP:
		err = nativewebp.Encode(&buf, img, nil)
	case domain.FormatBMP:
		err = bmp.Encode(&buf, img)
	case domain.FormatTIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrEncode, format, err)
	}

	return &domain.ConvertedImage{
		Format:   format,
		FileName: format.FileName(),
		Data:     buf.Bytes(),
	}, nil
}
