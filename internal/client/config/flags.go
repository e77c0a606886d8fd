package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/timereport/internal/flagx"
)

// parseFlags applies command-line overrides:
//
//	-a string   service address (host:port)
//	-t int      request timeout in seconds
//	-d string   path to the local session database
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, console
//
// Only these flags are looked at, so -c/-config and unrelated arguments pass
// through untouched. A malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the time report service")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
