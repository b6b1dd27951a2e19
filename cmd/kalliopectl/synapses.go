package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/kalliopectl/internal/cliconfig"
	"github.com/bft-labs/kalliopectl/pkg/log"
	"github.com/bft-labs/kalliopectl/pkg/synapse"
)

func newSynapsesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "synapses",
		Aliases: []string{"synapse", "syn"},
		Short:   "List and run synapses",
	}
	cmd.AddCommand(
		newListCommand(a),
		newRunCommand(a),
		newWatchCommand(a),
	)
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the synapses known to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			synapses, err := a.client.ListSynapses(cmd.Context(), a.cfg.Settings)
			if err != nil {
				return fmt.Errorf("list synapses: %w", err)
			}
			return printSynapses(a.out, a.cfg.Output, synapses)
		},
	}
}

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run NAME",
		Short: "Run a synapse by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := a.client.RunSynapse(cmd.Context(), synapse.Synapse{Name: args[0]}, a.cfg.Settings)
			if err != nil {
				return fmt.Errorf("run synapse %s: %w", args[0], err)
			}
			return printRunResult(a.out, a.cfg.Output, body)
		},
	}
}

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "List synapses again every time the config file changes",
		Long: `List synapses, then list them again every time the config file changes.

Each reload rebuilds the logger and HTTP client from the new configuration.
A config file that fails to load is logged and the previous configuration
stays in use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Owned by the watcher's Run goroutine once it starts.
			cfg, logger, client := a.cfg, a.logger, a.client

			list := func() {
				synapses, err := client.ListSynapses(ctx, cfg.Settings)
				if err != nil {
					logger.Error("list synapses", log.String("url", cfg.Settings.URL), log.Err(err))
					return
				}
				if err := printSynapses(a.out, cfg.Output, synapses); err != nil {
					logger.Error("print synapses", log.Err(err))
				}
			}

			list()

			w := cliconfig.NewWatcher(a.cfgPath, a.reload, func(next cliconfig.Config, err error) {
				if err != nil {
					return
				}
				nextLogger, err := cliconfig.NewLogger(next)
				if err != nil {
					logger.Error("rebuild logger", log.Err(err))
				} else {
					logger = nextLogger
				}
				cfg = next
				client = newClient(cfg, logger)
				list()
			}, a.logger)

			return w.Run(ctx)
		},
	}
}
