package handler

import (
	"context"
	"convbot/internal/core/domain"
	"convbot/internal/core/service"
	"errors"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type Router interface {
	Route(ctx context.Context, update *domain.Update) error
}

type Dispatcher interface {
	Submit(userID int64, job func()) error
}

// Update decodes Telegram updates and queues them per user for routing.
type Update struct {
	router     Router
	dispatcher Dispatcher
}

func NewUpdate(router Router, dispatcher Dispatcher) *Update {
	return &Update{router: router, dispatcher: dispatcher}
}

func (h *Update) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	decoded, ok := Decode(update)
	if !ok {
		log.Debug().Int64("updateId", update.ID).Msg("ignoring update")
		return
	}

	log.Debug().Str("kind", string(decoded.Kind)).Int64("userId", decoded.UserID).Msg("received update")

	// queued jobs outlive the polling context so they can finish during shutdown
	jobCtx := context.WithoutCancel(ctx)

	err := h.dispatcher.Submit(decoded.UserID, func() {
		err := h.router.Route(jobCtx, decoded)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrUnhandledUpdate):
			log.Debug().Err(err).Int64("userId", decoded.UserID).Msg("update not handled")
		default:
			log.Err(err).Str("kind", string(decoded.Kind)).Int64("userId", decoded.UserID).
				Msg("failed to respond to update")
		}
	})
	if err != nil {
		log.Warn().Err(err).Str("kind", string(decoded.Kind)).Int64("userId", decoded.UserID).
			Msg("dropping update")
	}
}

// IsImageUpload matches messages carrying a photo or an image document.
func IsImageUpload(update *models.Update) bool {
	if update.Message == nil {
		return false
	}

	return len(update.Message.Photo) > 0 || isImageDocument(update.Message.Document)
}

// Decode converts a Telegram update into a domain update. It reports false
// for updates the bot does not act on.
func Decode(update *models.Update) (*domain.Update, bool) {
	if update == nil {
		return nil, false
	}

	if update.CallbackQuery != nil {
		return decodeCallback(update.CallbackQuery), true
	}

	msg := update.Message
	if msg == nil {
		return nil, false
	}

	decoded := &domain.Update{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		UserID:    msg.Chat.ID,
	}

	if msg.From != nil {
		decoded.UserID = msg.From.ID
		decoded.Username = getUserNameOrFirstName(msg.From)
	}

	switch {
	case strings.HasPrefix(msg.Text, "/"):
		decoded.Kind = domain.KindCommand
		decoded.Text = msg.Text
	case len(msg.Photo) > 0:
		decoded.Kind = domain.KindUpload
		decoded.FileRef = findLargestImage(msg.Photo)
	case isImageDocument(msg.Document):
		decoded.Kind = domain.KindUpload
		decoded.FileRef = msg.Document.FileID
	default:
		return nil, false
	}

	return decoded, true
}

func decodeCallback(query *models.CallbackQuery) *domain.Update {
	action, err := domain.ParseAction(query.Data)
	if err != nil {
		log.Debug().Err(err).Str("data", query.Data).Msg("undecodable callback payload")
	}

	decoded := &domain.Update{
		Kind:       domain.KindCallback,
		UserID:     query.From.ID,
		Username:   getUserNameOrFirstName(&query.From),
		CallbackID: query.ID,
		Action:     action,
	}

	switch {
	case query.Message.Message != nil:
		decoded.ChatID = query.Message.Message.Chat.ID
		decoded.MessageID = query.Message.Message.ID
	case query.Message.InaccessibleMessage != nil:
		decoded.ChatID = query.Message.InaccessibleMessage.Chat.ID
		decoded.MessageID = query.Message.InaccessibleMessage.MessageID
	default:
		decoded.ChatID = query.From.ID
	}

	return decoded
}

func isImageDocument(doc *models.Document) bool {
	return doc != nil && doc.FileID != "" && strings.HasPrefix(strings.ToLower(doc.MimeType), "image/")
}

// findLargestImage picks the photo size with the most pixels; later entries win ties.
func findLargestImage(photos []models.PhotoSize) string {
	best := photos[0]
	for _, photo := range photos[1:] {
		if photo.Width*photo.Height >= best.Width*best.Height {
			best = photo
		}
	}

	return best.FileID
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
