package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/prodchart/internal/cli"
	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	var (
		write bool
		force bool
		path  string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the settings after merging defaults, the config file, PRODCHART_*
environment variables and flags. With --write, save them as a config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.settings.Encode()
			if err != nil {
				return err
			}

			if !write {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			if path == "" {
				dir, err := config.Dir()
				if err != nil {
					return err
				}
				path = filepath.Join(dir, "config.yaml")
			}
			path = config.ExpandPath(path)

			if _, err := os.Stat(path); err == nil && !force {
				return common.NewUserError(fmt.Sprintf("%s already exists; use --force to overwrite", path), nil)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := os.WriteFile(path, out, 0o600); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Wrote "+path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write the settings to a config file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.Flags().StringVar(&path, "path", "", "config file to write (default: $HOME/.config/prodchart/config.yaml)")

	return cmd
}
