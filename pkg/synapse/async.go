package synapse

import (
	"context"

	"github.com/bft-labs/kalliopectl/pkg/settings"
)

// ListResult is the outcome of ListSynapsesAsync.
type ListResult struct {
	Synapses []Synapse
	Err      error
}

// RunResult is the outcome of RunSynapseAsync.
type RunResult struct {
	Body any
	Err  error
}

// ListSynapsesAsync runs ListSynapses in a goroutine. The returned channel
// receives exactly one result and is then closed.
func (c *Client) ListSynapsesAsync(ctx context.Context, s settings.Settings) <-chan ListResult {
	ch := make(chan ListResult, 1)
	go func() {
		defer close(ch)
		synapses, err := c.ListSynapses(ctx, s)
		ch <- ListResult{Synapses: synapses, Err: err}
	}()
	return ch
}

// RunSynapseAsync runs RunSynapse in a goroutine. The returned channel
// receives exactly one result and is then closed.
func (c *Client) RunSynapseAsync(ctx context.Context, syn Synapse, s settings.Settings) <-chan RunResult {
	ch := make(chan RunResult, 1)
	go func() {
		defer close(ch)
		body, err := c.RunSynapse(ctx, syn, s)
		ch <- RunResult{Body: body, Err: err}
	}()
	return ch
}
