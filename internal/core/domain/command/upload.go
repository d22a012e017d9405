package command

import (
	"context"
	"convbot/internal/core/domain"
	"convbot/internal/core/port"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Upload struct {
	store      port.SessionStore
	catalog    *domain.Catalog
	textSender port.TextSender
}

func NewUpload(store port.SessionStore, catalog *domain.Catalog, textSender port.TextSender) *Upload {
	return &Upload{store: store, catalog: catalog, textSender: textSender}
}

// Respond remembers the uploaded file, replacing any earlier one, and asks for a target format.
func (h *Upload) Respond(ctx context.Context, timeout time.Duration, update *domain.Update) error {
	l := log.With().
		Int("messageId", update.MessageID).
		Int64("chatId", update.ChatID).
		Str("fileRef", update.FileRef).
		Logger()

	l.Info().Msg("handling upload")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	h.store.SetPendingFile(update.UserID, update.FileRef)
	lang := h.store.Get(update.UserID).Language

	_, err := h.textSender.SendText(ctx, update.ChatID, h.catalog.Lookup(lang, domain.KeyChooseFormat), formatMenu())
	if err != nil {
		return fmt.Errorf("failed to send format menu: %w", err)
	}

	return nil
}
