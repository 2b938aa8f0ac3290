package config

import "flag"

type Options struct {
	ConfigPath string
	Verbose    bool
}

func AddFlags(fs *flag.FlagSet, opts *Options) {
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to the credential file (overrides the default)")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging of HTTP requests")
}
