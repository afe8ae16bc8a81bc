package types

// PlatformState is the unified resume/preferences state persisted under one key.
type PlatformState struct {
	Preferences  DisplayPreferences `json:"preferences"`
	ResumeData   *ResumeRecord      `json:"resumeData"`
	JobMatches   []any              `json:"jobMatches"`
	Applications map[string]any     `json:"applications"`
	JDAnalyses   []any              `json:"jdAnalyses"`
	LastActivity string             `json:"lastActivity"`
}

// DisplayPreferences are the resume template and theme choices.
type DisplayPreferences struct {
	Template   string `json:"template"`
	ThemeColor string `json:"themeColor"`
}
