package command

import (
	"context"
	"convbot/internal/core/domain"
	"convbot/internal/core/port"
	"fmt"
)

// notify tells the user about cause in their language. Only a failure to
// deliver the notice is returned.
func notify(ctx context.Context, textSender port.TextSender, catalog *domain.Catalog, lang domain.Language,
	chatID int64, cause error) error {
	_, err := textSender.SendText(ctx, chatID, catalog.Lookup(lang, domain.KeyForError(cause)), nil)
	if err != nil {
		return fmt.Errorf("failed to notify user about %q: %w", cause, err)
	}

	return nil
}
