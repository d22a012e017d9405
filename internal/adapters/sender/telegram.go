package sender

import (
	"bytes"
	"context"
	"convbot/internal/core/domain"
	"fmt"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

//go:generate mockery --name TelegramBot

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

const TelegramMessageLimit = 4096

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

func (s *Telegram) SendText(ctx context.Context, chatID int64, text string, menu *domain.Menu) (int, error) {
	chunks := chunkText(text, TelegramMessageLimit)

	var lastID int
	for i, chunk := range chunks {
		params := &bot.SendMessageParams{
			ChatID: chatID,
			Text:   chunk,
		}

		if menu != nil && i == len(chunks)-1 {
			params.ReplyMarkup = inlineKeyboard(menu)
		}

		msg, err := s.bot.SendMessage(ctx, params)
		if err != nil {
			log.Error().Err(err).Int64("chatId", chatID).Msg("failed to send message")
			return lastID, fmt.Errorf("%w: send message: %w", domain.ErrTransport, err)
		}

		if msg != nil {
			lastID = msg.ID
		}
	}

	return lastID, nil
}

func (s *Telegram) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	_, err := s.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	})
	if err != nil {
		log.Error().Err(err).Int64("chatId", chatID).Int("messageId", messageID).Msg("failed to edit message")
		return fmt.Errorf("%w: edit message: %w", domain.ErrTransport, err)
	}

	return nil
}

func (s *Telegram) AnswerCallback(ctx context.Context, callbackID string) error {
	_, err := s.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
	if err != nil {
		return fmt.Errorf("%w: answer callback: %w", domain.ErrTransport, err)
	}

	return nil
}

func (s *Telegram) SendDocument(ctx context.Context, chatID int64, replyTo int, document *domain.Document) error {
	params := &bot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: document.FileName,
			Data:     bytes.NewReader(document.Data),
		},
		Caption: document.Caption,
	}

	if replyTo != 0 {
		params.ReplyParameters = &models.ReplyParameters{
			MessageID:                replyTo,
			ChatID:                   chatID,
			AllowSendingWithoutReply: true,
		}
	}

	_, err := s.bot.SendDocument(ctx, params)
	if err != nil {
		log.Error().Err(err).Int64("chatId", chatID).Str("fileName", document.FileName).
			Msg("failed to send document")
		return fmt.Errorf("%w: send document: %w", domain.ErrTransport, err)
	}

	return nil
}

func inlineKeyboard(menu *domain.Menu) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(menu.Rows))
	for _, row := range menu.Rows {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, models.InlineKeyboardButton{Text: b.Text, CallbackData: b.Data})
		}
		rows = append(rows, buttons)
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// chunkText splits text into pieces of at most limit runes.
func chunkText(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > 0 {
		n := min(limit, len(runes))
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}

	return chunks
}
