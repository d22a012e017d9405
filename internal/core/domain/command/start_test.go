package command

import (
	"convbot/internal/core/domain"
	"convbot/internal/core/service"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := domain.DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestNewStart(t *testing.T) {
	start := NewStart(service.NewMemoryStore(), testCatalog(t), &MockTextSender{}, "/start")

	assert.NotNil(t, start)
	assert.Equal(t, "/start", start.GetCommand())
}

func TestStartRespondSendsGreetingAndLanguageMenu(t *testing.T) {
	store := service.NewMemoryStore()
	store.SetLanguage(7, domain.Russian)
	ts := &MockTextSender{}

	start := NewStart(store, testCatalog(t), ts, "/start")

	err := start.Respond(t.Context(), time.Second, &domain.Update{Kind: domain.KindCommand, UserID: 7, ChatID: 70,
		Text: "/start"})
	require.NoError(t, err)

	assert.Equal(t, domain.English, store.Get(7).Language)
	require.Len(t, ts.Texts, 1)
	assert.Equal(t, int64(70), ts.Texts[0].ChatID)
	assert.Equal(t, "Send me an image and I'll convert it to another format.", ts.Texts[0].Text)

	require.NotNil(t, ts.Texts[0].Menu)
	assert.Equal(t, [][]domain.Button{{
		{Text: "English", Data: "lang_en"},
		{Text: "Русский", Data: "lang_ru"},
		{Text: "Українська", Data: "lang_uk"},
	}}, ts.Texts[0].Menu.Rows)
}

func TestStartRespondSendFailed(t *testing.T) {
	ts := &MockTextSender{err: errors.Join(domain.ErrTransport, errors.New("mock error"))}
	start := NewStart(service.NewMemoryStore(), testCatalog(t), ts, "/start")

	err := start.Respond(t.Context(), time.Second, &domain.Update{UserID: 1, ChatID: 1})
	require.ErrorIs(t, err, domain.ErrTransport)
}
