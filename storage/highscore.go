package storage

import (
	"go.uber.org/zap"
)

// HighScore tracks the best score, reading the store once and writing only on improvement
type HighScore struct {
	store Store
	key   string
	best  int
	log   *zap.Logger
}

// NewHighScore loads the persisted record
// Read failures and malformed values start from zero with a warning
func NewHighScore(store Store, key string, log *zap.Logger) *HighScore {
	if log == nil {
		log = zap.NewNop()
	}
	h := &HighScore{store: store, key: key, log: log}

	v, ok, err := store.Get(key)
	switch {
	case err != nil:
		log.Warn("high score unreadable, starting from zero", zap.String("key", key), zap.Error(err))
	case !ok:
		log.Debug("no stored high score", zap.String("key", key))
	case v < 0:
		log.Warn("negative high score ignored", zap.String("key", key), zap.Int("value", v))
	default:
		h.best = v
	}
	return h
}

func (h *HighScore) Best() int { return h.best }

// Submit records score if it beats the current best and reports whether it did
// A failed write is logged; the in-memory record is still updated
func (h *HighScore) Submit(score int) bool {
	if score <= h.best {
		return false
	}
	h.best = score
	if err := h.store.Set(h.key, score); err != nil {
		h.log.Warn("high score write failed", zap.String("key", h.key), zap.Int("score", score), zap.Error(err))
	}
	return true
}
