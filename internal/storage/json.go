package storage

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/placement-suite/internal/logger"
)

// ReadJSON decodes the JSON value stored under key. It returns def when the key is
// missing, the backend fails, the value is null, or the JSON does not fit T.
func ReadJSON[T any](s Store, key string, def T) T {
	raw, ok := ReadString(s, key)
	if !ok {
		return def
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		log := logger.Component("storage")
		log.Debug().Str("key", key).Err(err).Msg("discarding unreadable value")
		return def
	}
	return v
}

// ReadString returns the raw value stored under key. Backend errors read as missing.
func ReadString(s Store, key string) (string, bool) {
	if s == nil {
		return "", false
	}
	raw, ok, err := s.Get(key)
	if err != nil {
		log := logger.Component("storage")
		log.Warn().Str("key", key).Err(err).Msg("read failed")
		return "", false
	}
	return raw, ok
}

// WriteJSON encodes v and stores it under key. Failures are logged and reported as
// false; the caller's in-memory value stays authoritative.
func WriteJSON(s Store, key string, v any) bool {
	if s == nil {
		return false
	}
	data, err := json.Marshal(v)
	if err != nil {
		log := logger.Component("storage")
		log.Warn().Str("key", key).Err(err).Msg("encode failed")
		return false
	}
	if err := s.Set(key, string(data)); err != nil {
		log := logger.Component("storage")
		log.Warn().Str("key", key).Err(err).Msg("write failed")
		return false
	}
	return true
}

// RemoveKey deletes key, logging and ignoring failures.
func RemoveKey(s Store, key string) {
	if s == nil {
		return
	}
	if err := s.Remove(key); err != nil {
		log := logger.Component("storage")
		log.Warn().Str("key", key).Err(err).Msg("remove failed")
	}
}
