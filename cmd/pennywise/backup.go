package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/common"
	"github.com/pennywise-finance/pennywise/internal/storage"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage ledger backups",
	}
	cmd.AddCommand(backupCreateCmd())
	cmd.AddCommand(backupListCmd())
	cmd.AddCommand(backupRestoreCmd())
	return cmd
}

func backupCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a backup of the ledger files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := dataDir()
			if err != nil {
				return err
			}
			path, err := storage.CreateBackup(dir, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("Backup created at %s.", path)))
			return nil
		},
	}
}

func backupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available backups, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := dataDir()
			if err != nil {
				return err
			}
			backups, err := storage.ListBackups(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(backups) == 0 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("No backups found."))
				return nil
			}
			fmt.Fprintln(out, cli.TitleStyle.Render("Backups"))
			for _, b := range backups {
				fmt.Fprintf(out, "  %s\n", filepath.Base(b))
			}
			return nil
		},
	}
}

func backupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [archive]",
		Short: "Restore the ledger from a backup archive",
		Long: `Restore the ledger from a backup archive.

With no argument the most recent backup is restored. Existing ledger
files are overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir()
			if err != nil {
				return err
			}

			var archive string
			if len(args) == 1 {
				archive = args[0]
			} else {
				backups, err := storage.ListBackups(dir)
				if err != nil {
					return err
				}
				if len(backups) == 0 {
					return common.NewUserError("no backups found to restore", common.ErrNoBackups)
				}
				archive = backups[0]
			}

			if err := storage.RestoreBackup(archive, dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("Restored ledger from %s.", filepath.Base(archive))))
			return nil
		},
	}
}
