// Package synapse is a client for the synapse endpoints of the Kalliope
// core API.
//
// It lists the synapses known to a Kalliope server and runs a synapse by
// name. Responses are mapped into Synapse values; the body returned by a
// run is handed back decoded but otherwise untouched.
//
// # Usage
//
//	client := synapse.New(synapse.WithLogger(logger))
//	s := settings.New(settings.Overrides{URL: settings.String("pi.local:5000")})
//
//	synapses, err := client.ListSynapses(ctx, s)
//	if err != nil {
//	    return err
//	}
//	body, err := client.RunSynapse(ctx, synapses[0], s)
//
// # Errors
//
// The client never retries. Transport failures, non-2xx responses
// ([*StatusError]) and undecodable bodies ([ErrMalformedResponse]) are
// returned to the caller as-is.
//
// # Transport
//
// Any value with a Do(*http.Request) method can be injected with
// [WithHTTPClient], which is how tests substitute a fake server.
package synapse
