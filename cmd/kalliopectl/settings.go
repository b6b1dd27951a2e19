package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/kalliopectl/internal/cliconfig"
)

func newSettingsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect connection settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings (password masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.cfg.Settings.Redacted()
			if a.cfg.Output == cliconfig.OutputJSON {
				return writeJSON(a.out, s)
			}
			_, err := fmt.Fprintf(a.out, "url:        %s\nusername:   %s\npassword:   %s\nmute voice: %t\nconfig:     %s\n",
				s.URL, s.Username, s.Password, s.MuteVoice, a.cfgPath)
			return err
		},
	})
	return cmd
}
