package settoken

import (
	"flag"
	"fmt"
	"os"

	"stash-client/internal/shared/config"
	"stash-client/internal/shared/logging"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("set-token", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: stash-client set-token <token>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Persist the account token used by authenticated commands.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

func Run(args []string) int {
	fs := newFlagSet()

	opts := &config.Options{}
	config.AddFlags(fs, opts)

	fs.Usage = func() {
		printUsage(fs)
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	if fs.NArg() < 1 || fs.Arg(0) == "" {
		fmt.Fprintln(os.Stderr, "Error: token argument is required")
		fs.Usage()
		return 1
	}

	store, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := store.Save(fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Token saved to %s\n", store.Path())
	return 0
}
