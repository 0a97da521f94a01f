package main

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/rewinder/session"
)

var scriptFile string

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Run interpreter commands from a file or standard input",
	Long: `Run interpreter commands line by line from --file, or from standard input
when no file is given. Stops with a non-zero exit status at the first
runtime error.`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func init() {
	scriptCmd.Flags().StringVarP(&scriptFile, "file", "f", "", "File containing interpreter commands (default: standard input)")
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	var in io.Reader = cmd.InOrStdin()
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	s := session.New(cfg, cmd.OutOrStdout())
	log.Debug().Str("session", s.ID).Str("file", scriptFile).Msg("running script")
	return s.RunScript(in)
}
