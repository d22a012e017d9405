package command

import (
	"context"
	"convbot/internal/core/domain"
	"convbot/internal/core/port"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type ConvertParams struct {
	Store          port.SessionStore
	Catalog        *domain.Catalog
	Files          port.FileResolver
	ImageConverter port.ImageConverter
	TextSender     port.TextSender
	DocumentSender port.DocumentSender
	Metrics        port.Metrics
}

type Convert struct {
	store          port.SessionStore
	catalog        *domain.Catalog
	files          port.FileResolver
	imageConverter port.ImageConverter
	textSender     port.TextSender
	documentSender port.DocumentSender
	metrics        port.Metrics
}

func NewConvert(p ConvertParams) *Convert {
	return &Convert{
		store:          p.Store,
		catalog:        p.Catalog,
		files:          p.Files,
		imageConverter: p.ImageConverter,
		textSender:     p.TextSender,
		documentSender: p.DocumentSender,
		metrics:        p.Metrics,
	}
}

// Respond converts the last uploaded file of the user. The pending file is
// kept afterwards, so pressing another format button converts it again.
func (h *Convert) Respond(ctx context.Context, timeout time.Duration, update *domain.Update) error {
	action, ok := update.Action.(domain.SelectFormat)
	if !ok {
		return fmt.Errorf("convert handler got %T", update.Action)
	}

	l := log.With().
		Int("messageId", update.MessageID).
		Int64("chatId", update.ChatID).
		Str("format", string(action.Format)).
		Logger()

	l.Info().Msg("handling format selection")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := h.textSender.AnswerCallback(ctx, update.CallbackID); err != nil {
		l.Warn().Err(err).Msg("failed to answer callback")
	}

	session := h.store.Get(update.UserID)
	if !session.HasPendingFile() {
		l.Debug().Msg("no pending file")
		err := h.textSender.EditText(ctx, update.ChatID, update.MessageID,
			h.catalog.Lookup(session.Language, domain.KeyForError(domain.ErrNoPendingImage)))
		if err != nil {
			return fmt.Errorf("failed to report missing image: %w", err)
		}
		return nil
	}

	data, err := h.files.ResolveFile(ctx, session.PendingFile)
	if err != nil {
		l.Error().Err(err).Str("fileRef", session.PendingFile).Msg("failed to fetch file")
		return notify(ctx, h.textSender, h.catalog, session.Language, update.ChatID, err)
	}

	started := time.Now()
	converted, err := h.imageConverter.Convert(ctx, data, action.Format)
	h.metrics.ObserveConversion(action.Format, err, time.Since(started))
	if err != nil {
		l.Warn().Err(err).Msg("conversion failed")
		return notify(ctx, h.textSender, h.catalog, session.Language, update.ChatID, err)
	}

	l.Debug().Int("bytes", len(converted.Data)).Str("fileName", converted.FileName).Msg("converted image")

	err = h.documentSender.SendDocument(ctx, update.ChatID, update.MessageID, &domain.Document{
		FileName: converted.FileName,
		Data:     converted.Data,
		Caption:  h.catalog.Lookup(session.Language, domain.KeyConverted),
	})
	if err != nil {
		return fmt.Errorf("failed to send converted image: %w", err)
	}

	return nil
}
