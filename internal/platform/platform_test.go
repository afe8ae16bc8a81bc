package platform

import (
	"strings"
	"testing"
	"time"

	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 4, 2, 8, 15, 0, 0, time.UTC)

const fixedStamp = "2026-04-02T08:15:00.000Z"

func TestDefaultState(t *testing.T) {
	st := DefaultState(fixedNow)
	assert.Equal(t, types.DisplayPreferences{Template: "Classic", ThemeColor: "teal"}, st.Preferences)
	assert.Nil(t, st.ResumeData)
	assert.Equal(t, []any{}, st.JobMatches)
	assert.Equal(t, map[string]any{}, st.Applications)
	assert.Equal(t, []any{}, st.JDAnalyses)
	assert.Equal(t, fixedStamp, st.LastActivity)
}

func TestLoad_MigratesLegacyKeys(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(storage.KeyLegacyResumeData, `{"personalInfo":{"name":"Asha"},"skills":"Go, SQL"}`))
	require.NoError(t, s.Set(storage.KeyLegacyTemplate, "Modern"))
	require.NoError(t, s.Set(storage.KeyLegacyTheme, "navy"))

	st := Load(s, fixedNow)
	require.NotNil(t, st.ResumeData)
	assert.Equal(t, "Asha", st.ResumeData.PersonalInfo.Name)
	assert.Equal(t, []string{"Go", "SQL"}, st.ResumeData.Skills.Technical)
	assert.Equal(t, "Modern", st.Preferences.Template)
	assert.Equal(t, "navy", st.Preferences.ThemeColor)

	_, ok, err := s.Get(storage.KeyPlatformState)
	require.NoError(t, err)
	assert.True(t, ok, "migrated state is persisted")

	_, ok, _ = s.Get(storage.KeyLegacyResumeData)
	assert.True(t, ok, "legacy keys are left untouched")
}

func TestLoad_MigrationRejectsUnknownDisplayValues(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(storage.KeyLegacyTemplate, "Fancy"))
	require.NoError(t, s.Set(storage.KeyLegacyTheme, "pink"))

	st := Load(s, fixedNow)
	assert.Equal(t, "Classic", st.Preferences.Template)
	assert.Equal(t, "teal", st.Preferences.ThemeColor)
	assert.Nil(t, st.ResumeData)
}

func TestLoad_MigrationRunsOnce(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(storage.KeyLegacyTemplate, "Minimal"))
	Load(s, fixedNow)

	require.NoError(t, s.Set(storage.KeyLegacyTemplate, "Modern"))
	assert.Equal(t, "Minimal", Load(s, fixedNow).Preferences.Template)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(storage.KeyPlatformState, `{"preferences":{"template":"Modern","themeColor":"forest"},"jobMatches":null}`))

	st := Load(s, fixedNow)
	assert.Equal(t, "Modern", st.Preferences.Template)
	assert.Equal(t, []any{}, st.JobMatches)
	assert.Equal(t, map[string]any{}, st.Applications)
	assert.Equal(t, fixedStamp, st.LastActivity)
}

func TestLoad_CorruptStateYieldsDefaults(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(storage.KeyPlatformState, `{broken`))
	require.NoError(t, s.Set(storage.KeyLegacyTemplate, "Modern"))

	st := Load(s, fixedNow)
	assert.Equal(t, DefaultState(fixedNow), st)
}

func TestDisplay_ReplacesUnknownValues(t *testing.T) {
	st := DefaultState(fixedNow)
	st.Preferences = types.DisplayPreferences{Template: "Retro", ThemeColor: "charcoal"}
	assert.Equal(t, types.DisplayPreferences{Template: "Classic", ThemeColor: "charcoal"}, Display(st))
}

func TestSetTemplateAndTheme(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, SetTemplate(s, "Minimal", fixedNow))
	require.NoError(t, SetThemeColor(s, "burgundy", fixedNow))

	assert.Equal(t, types.DisplayPreferences{Template: "Minimal", ThemeColor: "burgundy"}, Load(s, fixedNow).Preferences)

	assert.Error(t, SetTemplate(s, "Gothic", fixedNow))
	assert.Error(t, SetThemeColor(s, "pink", fixedNow))
	assert.Equal(t, "Minimal", Load(s, fixedNow).Preferences.Template)
}

func TestSaveResume(t *testing.T) {
	s := storage.NewMemoryStore()
	saved := SaveResume(s, &types.ResumeRecord{Education: []types.Education{{Institution: "IIT"}}}, fixedNow)
	require.Len(t, saved.Education, 1)
	assert.True(t, strings.HasPrefix(saved.Education[0].ID, "ed-"))

	st := Load(s, fixedNow)
	require.NotNil(t, st.ResumeData)
	assert.Equal(t, saved.Education[0].ID, st.ResumeData.Education[0].ID)
}
