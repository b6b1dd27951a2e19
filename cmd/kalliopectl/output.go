package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bytedance/sonic"

	"github.com/bft-labs/kalliopectl/internal/cliconfig"
	"github.com/bft-labs/kalliopectl/pkg/synapse"
)

func writeJSON(w io.Writer, v any) error {
	b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printSynapses(w io.Writer, format string, synapses []synapse.Synapse) error {
	if format == cliconfig.OutputJSON {
		return writeJSON(w, synapses)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tORDER")
	for _, s := range synapses {
		order := "-"
		if s.Order != nil {
			order = s.Order.String()
		}
		fmt.Fprintf(tw, "%s\t%s\n", s.Name, order)
	}
	return tw.Flush()
}

func printRunResult(w io.Writer, format string, body any) error {
	if format == cliconfig.OutputJSON {
		return writeJSON(w, body)
	}
	b, err := sonic.ConfigStd.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
