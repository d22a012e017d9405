package service

import (
	"convbot/internal/core/domain"
	"sync"

	"github.com/rs/zerolog/log"
)

type sessionEntry struct {
	mu      sync.Mutex
	session domain.Session
}

// MemoryStore keeps sessions for the lifetime of the process. Each user entry
// carries its own lock, so writes for different users never contend.
type MemoryStore struct {
	sessions *sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: &sync.Map{}}
}

func (s *MemoryStore) Get(userID int64) domain.Session {
	v, ok := s.sessions.Load(userID)
	if !ok {
		return domain.Session{Language: domain.DefaultLanguage}
	}

	entry := v.(*sessionEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.session
}

func (s *MemoryStore) SetLanguage(userID int64, lang domain.Language) {
	entry := s.entry(userID)
	entry.mu.Lock()
	entry.session.Language = lang
	entry.mu.Unlock()

	log.Debug().Int64("userId", userID).Str("language", string(lang)).Msg("stored language")
}

func (s *MemoryStore) SetPendingFile(userID int64, fileRef string) {
	entry := s.entry(userID)
	entry.mu.Lock()
	entry.session.PendingFile = fileRef
	entry.mu.Unlock()

	log.Debug().Int64("userId", userID).Str("fileRef", fileRef).Msg("stored pending file")
}

func (s *MemoryStore) entry(userID int64) *sessionEntry {
	if v, ok := s.sessions.Load(userID); ok {
		return v.(*sessionEntry)
	}

	v, _ := s.sessions.LoadOrStore(userID, &sessionEntry{
		session: domain.Session{Language: domain.DefaultLanguage},
	})

	return v.(*sessionEntry)
}
