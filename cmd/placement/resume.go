package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jonathan/placement-suite/internal/platform"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/jonathan/placement-suite/internal/types"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage the saved resume and its display settings",
}

var resumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved resume and display settings as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return showResume(cmd.OutOrStdout(), app.store)
	},
}

var resumeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the saved resume with a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := readResumeFile(args[0])
		if err != nil {
			return err
		}
		saved := platform.SaveResume(app.store, r, now())
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported resume for %s\n", orUnnamed(saved.PersonalInfo.Name))
		return nil
	},
}

var resumeSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Replace the saved resume with sample content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sample := platform.SampleResume()
		platform.SaveResume(app.store, &sample, now())
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Loaded sample resume")
		return nil
	},
}

var resumeTemplateCmd = &cobra.Command{
	Use:       "template <Classic|Modern|Minimal>",
	Short:     "Choose the resume template",
	Args:      cobra.ExactArgs(1),
	ValidArgs: platform.Templates,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := platform.SetTemplate(app.store, args[0], now()); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Template set to %s\n", args[0])
		return nil
	},
}

var resumeThemeCmd = &cobra.Command{
	Use:       "theme <teal|navy|burgundy|forest|charcoal>",
	Short:     "Choose the resume theme color",
	Args:      cobra.ExactArgs(1),
	ValidArgs: platform.ThemeColors,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := platform.SetThemeColor(app.store, args[0], now()); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme color set to %s\n", args[0])
		return nil
	},
}

var resumeSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Edit the resume skill groups",
}

var resumeSkillsAddCmd = &cobra.Command{
	Use:   "add <technical|soft|tools> <skill>...",
	Short: "Add skills to a group",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editResume(cmd.OutOrStdout(), app.store, func(r *types.ResumeRecord) error {
			for _, skill := range args[1:] {
				if _, err := platform.AddSkill(r, args[0], skill); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var resumeSkillsRemoveCmd = &cobra.Command{
	Use:   "remove <technical|soft|tools> <position>",
	Short: "Remove the skill at a 1-based position from a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := position(args[1])
		if err != nil {
			return err
		}
		return editResume(cmd.OutOrStdout(), app.store, func(r *types.ResumeRecord) error {
			return platform.RemoveSkill(r, args[0], index)
		})
	},
}

var resumeSkillsSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Merge the suggested skills into every group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return editResume(cmd.OutOrStdout(), app.store, func(r *types.ResumeRecord) error {
			platform.SuggestSkills(r)
			return nil
		})
	},
}

var resumeRemoveCmd = &cobra.Command{
	Use:       "remove <education|experience|projects> <position>",
	Short:     "Remove the entry at a 1-based position from a section",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"education", "experience", "projects"},
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := position(args[1])
		if err != nil {
			return err
		}
		return editResume(cmd.OutOrStdout(), app.store, func(r *types.ResumeRecord) error {
			return removeEntry(r, args[0], index)
		})
	},
}

func init() {
	resumeSkillsCmd.AddCommand(resumeSkillsAddCmd, resumeSkillsRemoveCmd, resumeSkillsSuggestCmd)
	resumeCmd.AddCommand(resumeShowCmd, resumeImportCmd, resumeSampleCmd, resumeTemplateCmd,
		resumeThemeCmd, resumeSkillsCmd, resumeRemoveCmd)
	rootCmd.AddCommand(resumeCmd)
}

// resumeView is what resume show prints.
type resumeView struct {
	Preferences  types.DisplayPreferences `json:"preferences"`
	Resume       *types.ResumeRecord      `json:"resume"`
	LastActivity string                   `json:"lastActivity"`
}

func showResume(out io.Writer, s storage.Store) error {
	state := platform.Load(s, now())
	return writeJSON(out, resumeView{
		Preferences:  platform.Display(state),
		Resume:       state.ResumeData,
		LastActivity: state.LastActivity,
	})
}

// editResume applies edit to the saved resume (or an empty one) and stores the result.
func editResume(out io.Writer, s storage.Store, edit func(*types.ResumeRecord) error) error {
	r := platform.NormalizeResume(savedResume(s))
	if err := edit(&r); err != nil {
		return err
	}
	saved := platform.SaveResume(s, &r, now())
	_, _ = fmt.Fprintf(out, "Resume saved (%d skills, %d experience, %d projects)\n",
		saved.Skills.Count(), len(saved.Experience), len(saved.Projects))
	return nil
}

func removeEntry(r *types.ResumeRecord, section string, index int) error {
	switch section {
	case "education":
		return platform.RemoveEducation(r, index)
	case "experience":
		return platform.RemoveExperience(r, index)
	case "projects":
		return platform.RemoveProject(r, index)
	}
	return fmt.Errorf("unknown section %q (want education, experience or projects)", section)
}

// position converts a 1-based position argument to an index.
func position(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: must be a positive number", arg)
	}
	return n - 1, nil
}
