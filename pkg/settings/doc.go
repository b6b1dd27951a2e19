// Package settings holds the connection parameters for a Kalliope core API.
//
// Settings values are plain data: they are built from defaults, optionally
// overlaid with a partial set of fields, and passed by value to the synapse
// client on every call.
//
// # Usage
//
//	s := settings.New(settings.Overrides{
//	    URL: settings.String("raspberrypi.local:5000"),
//	})
//
// Fields left nil in Overrides keep their defaults:
//
//	URL       localhost:5000
//	Username  ""
//	Password  ""
//	MuteVoice false
//
// Settings are not validated at construction. An empty URL is accepted and
// only rejected when a request is issued.
package settings
