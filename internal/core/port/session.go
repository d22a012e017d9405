package port

import "convbot/internal/core/domain"

type SessionStore interface {
	// Get returns the session of a user, with defaults for users never seen before.
	Get(userID int64) domain.Session
	SetLanguage(userID int64, lang domain.Language)
	SetPendingFile(userID int64, fileRef string)
}
