package port

import (
	"context"
	"convbot/internal/core/domain"
)

type TextSender interface {
	// SendText sends text to a chat, optionally with an inline menu, and returns the ID of the last sent message.
	SendText(ctx context.Context, chatID int64, text string, menu *domain.Menu) (int, error)
	// EditText replaces the text of an earlier message and drops its inline menu.
	EditText(ctx context.Context, chatID int64, messageID int, text string) error
	// AnswerCallback acknowledges an inline button press so the client stops its loading indicator.
	AnswerCallback(ctx context.Context, callbackID string) error
}

type DocumentSender interface {
	// SendDocument uploads a file to the chat as a reply to the given message, if any.
	SendDocument(ctx context.Context, chatID int64, replyTo int, document *domain.Document) error
}

type FileResolver interface {
	// ResolveFile fetches the bytes behind a transport file reference.
	ResolveFile(ctx context.Context, fileRef string) ([]byte, error)
}
