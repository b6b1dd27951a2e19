// Package kalliopectl is a client for the Kalliope voice assistant core API.
//
// Example usage:
//
//	s := kalliopectl.NewSettings(kalliopectl.SettingsOverrides{
//	    URL: settings.String("pi.local:5000"),
//	})
//	client := kalliopectl.NewClient()
//	synapses, err := client.ListSynapses(ctx, s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, syn := range synapses {
//	    fmt.Println(syn.Name, syn.Order)
//	}
package kalliopectl

import (
	"github.com/bft-labs/kalliopectl/pkg/settings"
	"github.com/bft-labs/kalliopectl/pkg/synapse"
)

// Settings holds the parameters needed to reach a Kalliope server.
type Settings = settings.Settings

// SettingsOverrides is a partial Settings; nil fields keep their defaults.
type SettingsOverrides = settings.Overrides

// Synapse is a named automation unit on a Kalliope server.
type Synapse = synapse.Synapse

// Order is the payload carried by a synapse's triggering signal.
type Order = synapse.Order

// Client issues synapse requests against a Kalliope server.
type Client = synapse.Client

// DefaultURL is the address used when no URL is configured.
const DefaultURL = settings.DefaultURL

// DefaultSettings returns Settings with default values.
func DefaultSettings() Settings {
	return settings.Default()
}

// NewSettings overlays the provided overrides onto the defaults.
func NewSettings(o SettingsOverrides) Settings {
	return settings.New(o)
}

// NewClient creates a synapse client.
func NewClient(opts ...synapse.Option) *Client {
	return synapse.New(opts...)
}
