package port

import (
	"context"
	"convbot/internal/core/domain"
)

type ImageConverter interface {
	// Convert decodes raw image bytes of any recognizable format and re-encodes them into the target format.
	// Errors wrap domain.ErrDecode or domain.ErrEncode.
	Convert(ctx context.Context, data []byte, format domain.Format) (*domain.ConvertedImage, error)
}
