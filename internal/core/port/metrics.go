package port

import (
	"convbot/internal/core/domain"
	"time"
)

type Metrics interface {
	CountUpdate(kind domain.UpdateKind)
	// ObserveConversion records one conversion attempt; err is nil on success.
	ObserveConversion(format domain.Format, err error, elapsed time.Duration)
}
