// Package platform owns the unified resume and display-preference state, including the
// one-time migration from the standalone resume builder keys.
package platform

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonathan/placement-suite/internal/logger"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
)

// Resume templates and theme colors accepted by the builder.
var (
	Templates   = []string{"Classic", "Modern", "Minimal"}
	ThemeColors = []string{"teal", "navy", "burgundy", "forest", "charcoal"}
)

const (
	DefaultTemplate   = "Classic"
	DefaultThemeColor = "teal"
)

// DefaultState returns an empty state stamped with now.
func DefaultState(now time.Time) types.PlatformState {
	return types.PlatformState{
		Preferences:  types.DisplayPreferences{Template: DefaultTemplate, ThemeColor: DefaultThemeColor},
		ResumeData:   nil,
		JobMatches:   []any{},
		Applications: map[string]any{},
		JDAnalyses:   []any{},
		LastActivity: types.ISOTimestamp(now),
	}
}

// Load returns the persisted state merged over the defaults. When no unified state has
// been written yet, it migrates the legacy resume builder keys and persists the result.
// Unreadable state yields the defaults.
func Load(s storage.Store, now time.Time) types.PlatformState {
	raw, ok := storage.ReadString(s, storage.KeyPlatformState)
	if !ok || strings.TrimSpace(raw) == "" {
		return migrateLegacy(s, now)
	}

	state := DefaultState(now)
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log := logger.Component("platform")
		log.Debug().Err(err).Msg("discarding unreadable platform state")
		return DefaultState(now)
	}
	fillDefaults(&state, now)
	return state
}

// Save persists state, refreshing its lastActivity stamp.
func Save(s storage.Store, state types.PlatformState, now time.Time) types.PlatformState {
	state.LastActivity = types.ISOTimestamp(now)
	storage.WriteJSON(s, storage.KeyPlatformState, state)
	return state
}

// Display returns the stored preferences with unknown values replaced by the defaults.
func Display(state types.PlatformState) types.DisplayPreferences {
	p := state.Preferences
	if !slices.Contains(Templates, p.Template) {
		p.Template = DefaultTemplate
	}
	if !slices.Contains(ThemeColors, p.ThemeColor) {
		p.ThemeColor = DefaultThemeColor
	}
	return p
}

// SetTemplate stores a new resume template.
func SetTemplate(s storage.Store, template string, now time.Time) error {
	if !slices.Contains(Templates, template) {
		return fmt.Errorf("unknown template %q (want one of %s)", template, strings.Join(Templates, ", "))
	}
	state := Load(s, now)
	state.Preferences = Display(state)
	state.Preferences.Template = template
	Save(s, state, now)
	return nil
}

// SetThemeColor stores a new theme color.
func SetThemeColor(s storage.Store, color string, now time.Time) error {
	if !slices.Contains(ThemeColors, color) {
		return fmt.Errorf("unknown theme color %q (want one of %s)", color, strings.Join(ThemeColors, ", "))
	}
	state := Load(s, now)
	state.Preferences = Display(state)
	state.Preferences.ThemeColor = color
	Save(s, state, now)
	return nil
}

// SaveResume normalizes r and stores it as the current resume.
func SaveResume(s storage.Store, r *types.ResumeRecord, now time.Time) types.ResumeRecord {
	normalized := NormalizeResume(r)
	state := Load(s, now)
	state.ResumeData = &normalized
	Save(s, state, now)
	return normalized
}

// migrateLegacy builds the unified state from the standalone builder keys. The legacy
// keys are left in place.
func migrateLegacy(s storage.Store, now time.Time) types.PlatformState {
	state := DefaultState(now)
	state.ResumeData = storage.ReadJSON[*types.ResumeRecord](s, storage.KeyLegacyResumeData, nil)

	if t, ok := storage.ReadString(s, storage.KeyLegacyTemplate); ok && slices.Contains(Templates, t) {
		state.Preferences.Template = t
	}
	if c, ok := storage.ReadString(s, storage.KeyLegacyTheme); ok && slices.Contains(ThemeColors, c) {
		state.Preferences.ThemeColor = c
	}
	return Save(s, state, now)
}

func fillDefaults(state *types.PlatformState, now time.Time) {
	if state.JobMatches == nil {
		state.JobMatches = []any{}
	}
	if state.Applications == nil {
		state.Applications = map[string]any{}
	}
	if state.JDAnalyses == nil {
		state.JDAnalyses = []any{}
	}
	if state.LastActivity == "" {
		state.LastActivity = types.ISOTimestamp(now)
	}
}
