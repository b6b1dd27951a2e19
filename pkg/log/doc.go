// Package log provides the logging abstraction used by kalliopectl.
//
// The synapse client logs through the Logger interface so that callers can
// plug in their own logging stack. A zerolog adapter and a no-op logger are
// provided.
//
// # Usage
//
//	logger, err := log.NewZerologAdapterWithOptions(log.Options{
//	    Level: "debug",
//	    File:  "/var/log/kalliopectl.log",
//	})
//
// Or discard everything:
//
//	logger := log.NewNoopLogger()
package log
