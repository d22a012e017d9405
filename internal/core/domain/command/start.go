package command

import (
	"context"
	"convbot/internal/core/domain"
	"convbot/internal/core/port"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Start struct {
	store      port.SessionStore
	catalog    *domain.Catalog
	textSender port.TextSender
	command    string
}

func NewStart(store port.SessionStore, catalog *domain.Catalog, textSender port.TextSender, command string) *Start {
	return &Start{store: store, catalog: catalog, textSender: textSender, command: command}
}

func (s *Start) GetCommand() string {
	return s.command
}

// Respond resets the user to the default language and offers the language menu.
func (s *Start) Respond(ctx context.Context, timeout time.Duration, update *domain.Update) error {
	l := log.With().
		Int("messageId", update.MessageID).
		Int64("chatId", update.ChatID).
		Str("command", s.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.store.SetLanguage(update.UserID, domain.DefaultLanguage)

	_, err := s.textSender.SendText(ctx, update.ChatID,
		s.catalog.Lookup(domain.DefaultLanguage, domain.KeyGreeting), languageMenu(s.catalog))
	if err != nil {
		return fmt.Errorf("failed to send greeting: %w", err)
	}

	return nil
}
