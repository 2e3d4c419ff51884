package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmcdole/muse/internal/adapter"
	"github.com/spf13/cobra"
)

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the client configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := adapter.LoadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "backend.command  %s\n", cfg.Backend.Command)
			fmt.Fprintf(out, "backend.args     %v\n", cfg.Backend.Args)
			fmt.Fprintf(out, "ui.theme         %s\n", cfg.UI.Theme)
			fmt.Fprintf(out, "ui.album_columns %d\n", cfg.UI.AlbumColumns)
			fmt.Fprintf(out, "journal.path     %s\n", cfg.Journal.Path)
			fmt.Fprintf(out, "journal.record   %t\n", cfg.Journal.Record)
			fmt.Fprintf(out, "logging.file     %s\n", cfg.Logging.File)
			fmt.Fprintf(out, "logging.level    %s\n", cfg.Logging.Level)
			return nil
		},
	}
	cmd.AddCommand(configInitCmd(opts))
	return cmd
}

func configInitCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				path = filepath.Join(adapter.DefaultConfigDir(), "config.yaml")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := adapter.SaveConfig(adapter.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
