package command

import (
	"context"
	"convbot/internal/core/domain"
	"convbot/internal/core/port"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Language struct {
	store      port.SessionStore
	catalog    *domain.Catalog
	textSender port.TextSender
}

func NewLanguage(store port.SessionStore, catalog *domain.Catalog, textSender port.TextSender) *Language {
	return &Language{store: store, catalog: catalog, textSender: textSender}
}

func (h *Language) Respond(ctx context.Context, timeout time.Duration, update *domain.Update) error {
	action, ok := update.Action.(domain.SelectLanguage)
	if !ok {
		return fmt.Errorf("language handler got %T", update.Action)
	}

	l := log.With().
		Int("messageId", update.MessageID).
		Int64("chatId", update.ChatID).
		Str("language", string(action.Language)).
		Logger()

	l.Info().Msg("handling language selection")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := h.textSender.AnswerCallback(ctx, update.CallbackID); err != nil {
		l.Warn().Err(err).Msg("failed to answer callback")
	}

	if !h.catalog.Supported(action.Language) {
		l.Debug().Msg("unsupported language")
		current := h.store.Get(update.UserID).Language
		return notify(ctx, h.textSender, h.catalog, current, update.ChatID,
			fmt.Errorf("%w: %q", domain.ErrInvalidLanguage, action.Language))
	}

	h.store.SetLanguage(update.UserID, action.Language)

	err := h.textSender.EditText(ctx, update.ChatID, update.MessageID,
		h.catalog.Lookup(action.Language, domain.KeyGreeting))
	if err != nil {
		return fmt.Errorf("failed to edit greeting: %w", err)
	}

	return nil
}
