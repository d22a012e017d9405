package command

import (
	"context"
	"convbot/internal/core/domain"
	"sync"
	"time"
)

type sentText struct {
	ChatID int64
	Text   string
	Menu   *domain.Menu
}

type editedText struct {
	ChatID    int64
	MessageID int
	Text      string
}

type MockTextSender struct {
	mu        sync.Mutex
	Texts     []sentText
	Edits     []editedText
	Answered  []string
	err       error
	editErr   error
	answerErr error
}

func (m *MockTextSender) SendText(_ context.Context, chatID int64, text string, menu *domain.Menu) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Texts = append(m.Texts, sentText{ChatID: chatID, Text: text, Menu: menu})
	return len(m.Texts), m.err
}

func (m *MockTextSender) EditText(_ context.Context, chatID int64, messageID int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Edits = append(m.Edits, editedText{ChatID: chatID, MessageID: messageID, Text: text})
	return m.editErr
}

func (m *MockTextSender) AnswerCallback(_ context.Context, callbackID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Answered = append(m.Answered, callbackID)
	return m.answerErr
}

type sentDocument struct {
	ChatID   int64
	ReplyTo  int
	Document *domain.Document
}

type MockDocumentSender struct {
	Documents []sentDocument
	err       error
}

func (m *MockDocumentSender) SendDocument(_ context.Context, chatID int64, replyTo int, document *domain.Document) error {
	m.Documents = append(m.Documents, sentDocument{ChatID: chatID, ReplyTo: replyTo, Document: document})
	return m.err
}

type MockFiles struct {
	files     map[string][]byte
	err       error
	Requested []string
}

func (m *MockFiles) ResolveFile(_ context.Context, fileRef string) ([]byte, error) {
	m.Requested = append(m.Requested, fileRef)
	if m.err != nil {
		return nil, m.err
	}
	return m.files[fileRef], nil
}

type MockImageConverter struct {
	err     error
	Inputs  [][]byte
	Formats []domain.Format
}

func (m *MockImageConverter) Convert(_ context.Context, data []byte, format domain.Format) (*domain.ConvertedImage, error) {
	m.Inputs = append(m.Inputs, data)
	m.Formats = append(m.Formats, format)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ConvertedImage{
		Format:   format,
		FileName: format.FileName(),
		Data:     append([]byte(string(format)+":"), data...),
	}, nil
}

type observedConversion struct {
	Format domain.Format
	Err    error
}

type MockMetrics struct {
	Updates     []domain.UpdateKind
	Conversions []observedConversion
}

func (m *MockMetrics) CountUpdate(kind domain.UpdateKind) {
	m.Updates = append(m.Updates, kind)
}

func (m *MockMetrics) ObserveConversion(format domain.Format, err error, _ time.Duration) {
	m.Conversions = append(m.Conversions, observedConversion{Format: format, Err: err})
}
