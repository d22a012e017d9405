package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLanguage = errors.New("invalid language selection")
	ErrNoPendingImage  = errors.New("no image found")
	ErrDecode          = errors.New("failed to decode image")
	ErrEncode          = errors.New("failed to encode image")
	ErrTransport       = errors.New("transport failure")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrUnknownAction   = errors.New("unknown callback action")

	ErrUnsupportedFormat = fmt.Errorf("unsupported target format: %w", ErrEncode)
)
