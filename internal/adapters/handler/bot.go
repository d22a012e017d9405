package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// BotOptions are required for a bot serving Update. Handlers run on the
// single polling worker, so updates reach the dispatcher in arrival order.
func BotOptions() []bot.Option {
	return []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
		bot.WithNotAsyncHandlers(),
	}
}

// Register routes commands, callback queries and image uploads to h.
func (h *Update) Register(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, h.Handle)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, h.Handle)
	b.RegisterHandlerMatchFunc(IsImageUpload, h.Handle)
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
