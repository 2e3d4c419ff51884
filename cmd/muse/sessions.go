package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/mmcdole/muse/internal/adapter"
	"github.com/mmcdole/muse/internal/journal"
	"github.com/spf13/cobra"
)

func sessionsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := openJournal(opts.configPath)
			if err != nil {
				return err
			}
			defer j.Close()

			sessions, err := j.Sessions()
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded sessions.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTARTED\tEVENTS")
			for _, s := range sessions {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), s.Events)
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(sessionsDeleteCmd(opts))
	return cmd
}

func sessionsDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openJournal(opts.configPath)
			if err != nil {
				return err
			}
			defer j.Close()

			if err := j.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
			return nil
		},
	}
}

func openJournal(configPath string) (*journal.Journal, error) {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	path, err := adapter.ExpandHome(cfg.Journal.Path)
	if err != nil {
		return nil, err
	}
	return journal.Open(path)
}
