package main

import (
	"fmt"
	"io"

	"github.com/jonathan/placement-suite/internal/checklist"
	"github.com/jonathan/placement-suite/internal/observability"
	"github.com/jonathan/placement-suite/internal/storage"
	"github.com/spf13/cobra"
)

// Checklist names accepted on the command line.
const (
	listMaster  = "master"
	listTracker = "tracker"
)

var checklistNames = []string{listMaster, listTracker}

var checklistCmd = &cobra.Command{
	Use:       "checklist [master|tracker]",
	Short:     "Show a pre-ship QA checklist",
	Long:      "Shows the readiness tool checklist (master, the default) or the job tracker checklist with the number of passed tests.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: checklistNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := listMaster
		if len(args) == 1 {
			name = args[0]
		}
		return printChecklist(cmd.OutOrStdout(), app.store, name)
	},
}

var checklistCheckCmd = &cobra.Command{
	Use:   "check <master|tracker> <test-id>...",
	Short: "Mark tests as passed",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleTests(cmd.OutOrStdout(), app.store, args[0], args[1:], true)
	},
}

var checklistUncheckCmd = &cobra.Command{
	Use:   "uncheck <master|tracker> <test-id>...",
	Short: "Mark tests as not passed",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleTests(cmd.OutOrStdout(), app.store, args[0], args[1:], false)
	},
}

var checklistResetCmd = &cobra.Command{
	Use:       "reset <master|tracker>",
	Short:     "Clear every check of a checklist",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: checklistNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadChecklist(app.store, args[0])
		if err != nil {
			return err
		}
		for i := range st.Tests {
			st.Tests[i].Checked = false
		}
		if err := saveChecklist(app.store, args[0], st.Tests); err != nil {
			return err
		}
		return printChecklist(cmd.OutOrStdout(), app.store, args[0])
	},
}

func init() {
	checklistCmd.AddCommand(checklistCheckCmd, checklistUncheckCmd, checklistResetCmd)
	rootCmd.AddCommand(checklistCmd)
}

func loadChecklist(s storage.Store, name string) (checklist.Status, error) {
	switch name {
	case listMaster:
		return checklist.LoadMaster(s), nil
	case listTracker:
		return checklist.LoadJobTracker(s), nil
	}
	return checklist.Status{}, fmt.Errorf("unknown checklist %q (want master or tracker)", name)
}

func saveChecklist(s storage.Store, name string, tests []checklist.Test) error {
	ok := false
	switch name {
	case listMaster:
		ok = checklist.SaveMaster(s, tests)
	case listTracker:
		ok = checklist.SaveJobTracker(s, tests)
	}
	if !ok {
		return fmt.Errorf("failed to save %s checklist", name)
	}
	return nil
}

func toggleTests(out io.Writer, s storage.Store, name string, ids []string, checked bool) error {
	st, err := loadChecklist(s, name)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if !checklist.Toggle(st.Tests, id, checked) {
			return fmt.Errorf("unknown test %q in %s checklist", id, name)
		}
	}
	if err := saveChecklist(s, name, st.Tests); err != nil {
		return err
	}
	return printChecklist(out, s, name)
}

func printChecklist(out io.Writer, s storage.Store, name string) error {
	st, err := loadChecklist(s, name)
	if err != nil {
		return err
	}
	title := "TEST CHECKLIST"
	if name == listTracker {
		title = "JOB TRACKER TESTS"
	}
	observability.NewPrinter(out).PrintChecklist(title, st)
	return nil
}
