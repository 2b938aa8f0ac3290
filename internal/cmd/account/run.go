// Package account implements the account and locations commands.
package account

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stash-client/internal/shared/config"
	"stash-client/internal/shared/logging"
	"stash-client/internal/shared/stash"
)

func printUsage(fs *flag.FlagSet, usage, detail string) {
	fmt.Fprintf(os.Stderr, "Usage: stash-client %s\n", usage)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, detail)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

// RunAccount shows the authenticated account's details.
func RunAccount(args []string) int {
	fs := flag.NewFlagSet("account", flag.ContinueOnError)
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, "account [token]", "Show details for the account behind the token.")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	store, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	token, err := store.Resolve(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run \"stash-client set-token <token>\" or pass a token for this call.")
		return 1
	}

	client := stash.NewDefault(token)
	resp, err := client.Account(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		return 1
	}

	fmt.Println(stash.Render(resp.Body))
	return 0
}

// RunLocations lists the available storage locations.
func RunLocations(args []string) int {
	fs := flag.NewFlagSet("locations", flag.ContinueOnError)
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, "locations", "List the storage locations available for uploads.")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	client := stash.NewDefault("")
	resp, err := client.Locations(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		return 1
	}

	fmt.Println(stash.Render(resp.Body))
	return 0
}
