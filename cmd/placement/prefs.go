package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/placement-suite/internal/jobs"
	"github.com/jonathan/placement-suite/internal/schemas"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	embedded "github.com/jonathan/placement-suite/schemas"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage job match preferences",
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the preference profile",
	Long: "Updates the stored preference profile. Only the flags you pass are changed. " +
		"List flags take comma-separated values. --file replaces the whole profile with a JSON or YAML document.",
	Args: cobra.NoArgs,
	RunE: runPrefsSet,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the normalized preference profile",
	Args:  cobra.NoArgs,
	RunE:  runPrefsShow,
}

var prefsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the preference profile",
	Long:  "Deletes the stored preference profile. Match scores and the digest stay off until preferences are set again.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobs.ClearPreferences(app.store)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Preferences cleared.")
		return nil
	},
}

var (
	prefsRoles      string
	prefsLocations  string
	prefsModes      string
	prefsExperience string
	prefsSkills     string
	prefsMinScore   int
	prefsFile       string
)

func init() {
	f := prefsSetCmd.Flags()
	f.StringVar(&prefsRoles, "roles", "", "Role keywords, e.g. \"backend, sde\"")
	f.StringVar(&prefsLocations, "locations", "", "Preferred locations")
	f.StringVar(&prefsModes, "modes", "", "Preferred work modes (Remote, Hybrid, Onsite)")
	f.StringVar(&prefsExperience, "experience", "", "Experience band (Fresher, 0-1, 1-3, 3-5)")
	f.StringVar(&prefsSkills, "skills", "", "Your skills")
	f.IntVar(&prefsMinScore, "min-score", types.DefaultMinMatchScore, "Minimum match score (0-100)")
	f.StringVarP(&prefsFile, "file", "f", "", "Load the whole profile from a JSON or YAML file")

	prefsCmd.AddCommand(prefsSetCmd, prefsShowCmd, prefsClearCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsSet(cmd *cobra.Command, _ []string) error {
	var raw map[string]any
	if prefsFile != "" {
		loaded, err := readPreferencesFile(prefsFile)
		if err != nil {
			return err
		}
		raw = loaded
	} else {
		raw = storage.ReadJSON[map[string]any](app.store, storage.KeyJobPreferences, nil)
		if raw == nil {
			raw = map[string]any{}
		}
		f := cmd.Flags()
		setIfChanged := func(flag, key, value string) {
			if f.Changed(flag) {
				raw[key] = value
			}
		}
		setIfChanged("roles", "roleKeywords", prefsRoles)
		setIfChanged("locations", "preferredLocations", prefsLocations)
		setIfChanged("modes", "preferredMode", prefsModes)
		setIfChanged("experience", "experienceLevel", prefsExperience)
		setIfChanged("skills", "skills", prefsSkills)
		if f.Changed("min-score") {
			check := types.PreferenceProfile{MinMatchScore: prefsMinScore}
			if err := check.Validate(); err != nil {
				return fmt.Errorf("invalid --min-score %d: must be between 0 and 100", prefsMinScore)
			}
			raw["minMatchScore"] = prefsMinScore
		}
	}

	if !jobs.SavePreferences(app.store, raw) {
		return fmt.Errorf("failed to save preferences")
	}
	return printPreferences(cmd.OutOrStdout(), app.store)
}

// readPreferencesFile validates a preference document against the embedded schema and
// decodes it into the raw stored shape.
func readPreferencesFile(path string) (map[string]any, error) {
	if err := schemas.ValidateFile(embedded.Preferences, path); err != nil {
		return nil, fmt.Errorf("invalid preferences file: %w", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file %s: %w", path, err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &raw)
	default:
		err = json.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse preferences file %s: %w", path, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func runPrefsShow(cmd *cobra.Command, _ []string) error {
	return printPreferences(cmd.OutOrStdout(), app.store)
}

func printPreferences(out io.Writer, s storage.Store) error {
	prefs := jobs.LoadPreferences(s)
	if prefs == nil {
		_, _ = fmt.Fprintln(out, "No preferences saved yet. Use 'placement prefs set' to create them.")
		return nil
	}
	return writeJSON(out, prefs)
}
