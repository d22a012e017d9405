package file

import (
	"context"
	"convbot/internal/core/domain"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type FileGetter interface {
	GetFile(ctx context.Context, params *bot.GetFileParams) (*models.File, error)
	FileDownloadLink(f *models.File) string
}

const downloadTimeout = 30 * time.Second

// TelegramResolver turns Bot API file IDs into file contents.
type TelegramResolver struct {
	bot    FileGetter
	client *http.Client
}

func NewTelegramResolver(bot FileGetter) *TelegramResolver {
	return &TelegramResolver{bot: bot, client: &http.Client{Timeout: downloadTimeout}}
}

func (r *TelegramResolver) ResolveFile(ctx context.Context, fileRef string) ([]byte, error) {
	f, err := r.bot.GetFile(ctx, &bot.GetFileParams{FileID: fileRef})
	if err != nil {
		return nil, fmt.Errorf("%w: get file: %w", domain.ErrTransport, err)
	}

	if f.FileSize > MaxDownloadBytes {
		return nil, ErrFileTooLarge
	}

	data, err := DownloadFile(ctx, r.client, r.bot.FileDownloadLink(f))
	if errors.Is(err, ErrFileTooLarge) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: download file: %w", domain.ErrTransport, err)
	}

	log.Debug().Str("fileRef", fileRef).Int("bytes", len(data)).Msg("resolved file")

	return data, nil
}
