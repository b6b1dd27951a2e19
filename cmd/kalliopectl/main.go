package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/kalliopectl/internal/cliconfig"
	"github.com/bft-labs/kalliopectl/pkg/log"
	"github.com/bft-labs/kalliopectl/pkg/synapse"
)

const longHelp = `
Control a Kalliope voice assistant from the command line.

Lists the synapses known to a Kalliope core API and runs them by name.
Connection settings come from a TOML file, KALLIOPE_* environment variables
or flags, in increasing order of precedence.
`

var exampleUsage = strings.TrimSpace(`
  kalliopectl synapses list --url pi.local:5000 --username admin --password secret
  kalliopectl synapses run say-hello
  kalliopectl --config $HOME/.kalliopectl/config.toml synapses watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration and collaborators shared by all commands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	changed map[string]bool
	flagged cliconfig.Config

	logger log.Logger
	client *synapse.Client
	out    io.Writer
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "kalliopectl",
		Short:         "Control a Kalliope voice assistant",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.kalliopectl/config.toml)")
	flags.StringVar(&a.cfg.Settings.URL, "url", a.cfg.Settings.URL, "host:port of the Kalliope API")
	flags.StringVar(&a.cfg.Settings.Username, "username", a.cfg.Settings.Username, "basic auth username")
	flags.StringVar(&a.cfg.Settings.Password, "password", a.cfg.Settings.Password, "basic auth password")
	flags.BoolVar(&a.cfg.Settings.MuteVoice, "mute-voice", a.cfg.Settings.MuteVoice, "ask Kalliope not to speak")
	flags.DurationVar(&a.cfg.HTTPTimeout, "timeout", a.cfg.HTTPTimeout, "HTTP timeout")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&a.cfg.LogFile, "log-file", a.cfg.LogFile, "also write JSON logs to this file (rotated)")
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "output format (text or json)")

	root.AddCommand(newSynapsesCommand(a), newSettingsCommand(a))
	return root
}

// setup layers file and environment configuration under the flags and
// builds the logger and client.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfgPath == "" {
		a.cfgPath = cliconfig.DefaultConfigPath()
	}

	a.changed = map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { a.changed[f.Name] = true })

	a.flagged = a.cfg
	cfg, err := a.reload()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := cliconfig.NewLogger(cfg)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration", log.Any("config", cfg.Redacted()))

	a.client = newClient(cfg, logger)
	return nil
}

// reload resolves the configuration again from the values the flags produced.
func (a *app) reload() (cliconfig.Config, error) {
	return cliconfig.Resolve(a.flagged, a.cfgPath, a.changed)
}

func newClient(cfg cliconfig.Config, logger log.Logger) *synapse.Client {
	return synapse.New(
		synapse.WithTimeout(cfg.HTTPTimeout),
		synapse.WithLogger(logger),
	)
}

func main() {
	a := &app{
		cfg: cliconfig.DefaultConfig(),
		out: os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(a)
	if err := root.ExecuteContext(ctx); err != nil {
		if a.logger != nil {
			a.logger.Error("kalliopectl", log.Err(err))
		} else {
			fmt.Fprintln(os.Stderr, "kalliopectl:", err)
		}
		stop()
		os.Exit(1)
	}
}
