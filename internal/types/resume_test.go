package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeSkills_UnmarshalGrouped(t *testing.T) {
	var s ResumeSkills
	require.NoError(t, json.Unmarshal([]byte(`{"technical":["Go"],"soft":["Communication"],"tools":["Git","Docker"]}`), &s))
	assert.Equal(t, []string{"Go"}, s.Technical)
	assert.Equal(t, []string{"Communication"}, s.Soft)
	assert.Equal(t, []string{"Git", "Docker"}, s.Tools)
	assert.Equal(t, 4, s.Count())
}

func TestResumeSkills_UnmarshalLegacyString(t *testing.T) {
	var s ResumeSkills
	require.NoError(t, json.Unmarshal([]byte(`" Go, SQL ,, React "`), &s))
	assert.Equal(t, []string{"Go", "SQL", "React"}, s.Technical)
	assert.Empty(t, s.Soft)
	assert.Empty(t, s.Tools)
}

func TestResumeSkills_UnmarshalOtherValuesAreEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `42`, `["Go"]`, `true`} {
		s := ResumeSkills{Technical: []string{"stale"}}
		require.NoError(t, json.Unmarshal([]byte(raw), &s), raw)
		assert.Equal(t, 0, s.Count(), raw)
	}
}

func TestResumeRecord_UnmarshalLegacySkillsField(t *testing.T) {
	var r ResumeRecord
	require.NoError(t, json.Unmarshal([]byte(`{"summary":"hi","skills":"Python, SQL"}`), &r))
	assert.Equal(t, "hi", r.Summary)
	assert.Equal(t, []string{"Python", "SQL"}, r.Skills.Technical)
}

func TestProject_UnmarshalLegacyURL(t *testing.T) {
	var p Project
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","name":"Tracker","url":"https://github.com/me/tracker"}`), &p))
	assert.Equal(t, "https://github.com/me/tracker", p.GithubURL)
	assert.NotNil(t, p.TechStack)
	assert.Empty(t, p.TechStack)
}

func TestProject_UnmarshalPrefersGithubURL(t *testing.T) {
	var p Project
	raw := `{"name":"Tracker","githubUrl":"https://github.com/me/new","url":"https://github.com/me/old","techStack":["Go"]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "https://github.com/me/new", p.GithubURL)
	assert.Equal(t, []string{"Go"}, p.TechStack)
}

func TestSplitCommaList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SplitCommaList(" a ,, b c ,"))
	assert.Empty(t, SplitCommaList(""))
	assert.Empty(t, SplitCommaList(" , "))
}
