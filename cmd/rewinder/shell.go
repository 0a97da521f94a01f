package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timewinder-dev/rewinder/session"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Enter interactive shell mode",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s := session.New(cfg, cmd.OutOrStdout())
	rl, err := s.NewReadline()
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer rl.Close()
	return s.RunShell(rl)
}
