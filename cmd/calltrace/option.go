package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/aalemi-dev/calltrace/config"
)

// Options are the command line flags. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config   string `short:"f" long:"config" description:"configuration YAML path"`
	Level    string `short:"l" long:"level" description:"log level, overrides logger.level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	LogFile  string `long:"log-file" description:"rotating log file, overrides logger.file.path"`
	Manifest string `short:"m" long:"manifest" description:"marker manifest, overrides selector.manifest"`
	Deposits []int  `short:"d" long:"deposit" description:"amount deposited by the demo workload (repeatable)"`
}

var defaultDeposits = []int{50, 20}

// parseOptions parses args. A help request is returned as a *flags.Error
// of type flags.ErrHelp.
func parseOptions(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	if len(opts.Deposits) == 0 {
		opts.Deposits = defaultDeposits
	}
	return opts, nil
}

// apply copies the flags that override configuration values into cfg.
func (o *Options) apply(cfg *config.Config) {
	if o.Level != "" {
		cfg.Logger.Level = o.Level
	}
	if o.LogFile != "" {
		cfg.Logger.File.Path = o.LogFile
	}
	if o.Manifest != "" {
		cfg.Selector.ManifestPath = o.Manifest
	}
}
