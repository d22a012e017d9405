package command

import (
	"convbot/internal/core/domain"
	"convbot/internal/core/service"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type convertFixture struct {
	store     *service.MemoryStore
	catalog   *domain.Catalog
	files     *MockFiles
	converter *MockImageConverter
	text      *MockTextSender
	documents *MockDocumentSender
	metrics   *MockMetrics
	handler   *Convert
}

func newConvertFixture(t *testing.T) *convertFixture {
	f := &convertFixture{
		store:     service.NewMemoryStore(),
		catalog:   testCatalog(t),
		files:     &MockFiles{files: map[string][]byte{"file-1": []byte("one"), "file-2": []byte("two")}},
		converter: &MockImageConverter{},
		text:      &MockTextSender{},
		documents: &MockDocumentSender{},
		metrics:   &MockMetrics{},
	}

	f.handler = NewConvert(ConvertParams{
		Store:          f.store,
		Catalog:        f.catalog,
		Files:          f.files,
		ImageConverter: f.converter,
		TextSender:     f.text,
		DocumentSender: f.documents,
		Metrics:        f.metrics,
	})

	return f
}

func convertUpdate(format domain.Format) *domain.Update {
	return &domain.Update{
		Kind:       domain.KindCallback,
		UserID:     9,
		ChatID:     90,
		MessageID:  900,
		CallbackID: "cb-convert",
		Action:     domain.SelectFormat{Format: format},
	}
}

func TestConvertRespondWithoutUploadReportsNoImage(t *testing.T) {
	for _, lang := range testCatalog(t).Languages() {
		t.Run(string(lang), func(t *testing.T) {
			f := newConvertFixture(t)
			f.store.SetLanguage(9, lang)

			err := f.handler.Respond(t.Context(), time.Second, convertUpdate(domain.FormatPNG))
			require.NoError(t, err)

			assert.Equal(t, []string{"cb-convert"}, f.text.Answered)
			assert.Equal(t, []editedText{{ChatID: 90, MessageID: 900, Text: f.catalog.Lookup(lang, domain.KeyNoImage)}},
				f.text.Edits)
			assert.Empty(t, f.files.Requested)
			assert.Empty(t, f.converter.Inputs)
			assert.Empty(t, f.documents.Documents)
		})
	}
}

func TestConvertRespondSendsConvertedDocument(t *testing.T) {
	f := newConvertFixture(t)
	f.store.SetLanguage(9, domain.Russian)
	f.store.SetPendingFile(9, "file-1")

	err := f.handler.Respond(t.Context(), time.Second, convertUpdate(domain.FormatPNG))
	require.NoError(t, err)

	assert.Equal(t, []string{"file-1"}, f.files.Requested)
	assert.Equal(t, []domain.Format{domain.FormatPNG}, f.converter.Formats)
	require.Len(t, f.documents.Documents, 1)

	sent := f.documents.Documents[0]
	assert.Equal(t, int64(90), sent.ChatID)
	assert.Equal(t, 900, sent.ReplyTo)
	assert.Equal(t, "converted.png", sent.Document.FileName)
	assert.Equal(t, []byte("PNG:one"), sent.Document.Data)
	assert.Equal(t, "Вот ваше сконвертированное изображение:", sent.Document.Caption)

	assert.Equal(t, []observedConversion{{Format: domain.FormatPNG}}, f.metrics.Conversions)
}

func TestConvertRespondKeepsPendingFile(t *testing.T) {
	f := newConvertFixture(t)
	f.store.SetPendingFile(9, "file-1")

	require.NoError(t, f.handler.Respond(t.Context(), time.Second, convertUpdate(domain.FormatPNG)))
	require.NoError(t, f.handler.Respond(t.Context(), time.Second, convertUpdate(domain.FormatBMP)))

	assert.Equal(t, "file-1", f.store.Get(9).PendingFile)
	assert.Equal(t, []string{"file-1", "file-1"}, f.files.Requested)
	assert.Len(t, f.documents.Documents, 2)
	assert.Equal(t, "converted.bmp", f.documents.Documents[1].Document.FileName)
}

func TestConvertRespondFailures(t *testing.T) {
	tests := []struct {
		name       string
		fetchErr   error
		convertErr error
		wantKey    domain.Key
	}{
		{
			name:     "fetch fails",
			fetchErr: fmt.Errorf("%w: get file: timeout", domain.ErrTransport),
			wantKey:  domain.KeyTransportFailed,
		},
		{
			name:     "file too large",
			fetchErr: fmt.Errorf("download file: %w", domain.ErrFileTooLarge),
			wantKey:  domain.KeyFileTooLarge,
		},
		{
			name:       "decode fails",
			convertErr: fmt.Errorf("%w: unknown format", domain.ErrDecode),
			wantKey:    domain.KeyDecodeFailed,
		},
		{
			name:       "encode fails",
			convertErr: fmt.Errorf("%w: WEBP: boom", domain.ErrEncode),
			wantKey:    domain.KeyEncodeFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newConvertFixture(t)
			f.store.SetLanguage(9, domain.Ukrainian)
			f.store.SetPendingFile(9, "file-1")
			f.files.err = tc.fetchErr
			f.converter.err = tc.convertErr

			err := f.handler.Respond(t.Context(), time.Second, convertUpdate(domain.FormatWEBP))
			require.NoError(t, err)

			require.Len(t, f.text.Texts, 1)
			assert.Equal(t, f.catalog.Lookup(domain.Ukrainian, tc.wantKey), f.text.Texts[0].Text)
			assert.Empty(t, f.documents.Documents)
		})
	}
}

func TestConvertRespondConversionFailureIsObserved(t *testing.T) {
	f := newConvertFixture(t)
	f.store.SetPendingFile(9, "file-1")
	f.converter.err = domain.ErrDecode

	require.NoError(t, f.handler.Respond(t.Context(), time.Second, convertUpdate(domain.FormatJPEG)))
	require.Len(t, f.metrics.Conversions, 1)
	assert.ErrorIs(t, f.metrics.Conversions[0].Err, domain.ErrDecode)
}

func TestConvertRespondSendDocumentFailed(t *testing.T) {
	f := newConvertFixture(t)
	f.store.SetPendingFile(9, "file-1")
	f.documents.err = errors.Join(domain.ErrTransport, errors.New("mock error"))

	err := f.handler.Respond(t.Context(), time.Second, convertUpdate(domain.FormatTIFF))
	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestConvertRespondNotifyFailed(t *testing.T) {
	f := newConvertFixture(t)
	f.store.SetPendingFile(9, "file-1")
	f.converter.err = domain.ErrDecode
	f.text.err = errors.Join(domain.ErrTransport, errors.New("mock error"))

	err := f.handler.Respond(t.Context(), time.Second, convertUpdate(domain.FormatTIFF))
	require.ErrorIs(t, err, domain.ErrTransport)
}
