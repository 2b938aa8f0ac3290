// Package upload implements the upload-anon, upload-auth, upload-loc,
// upload-note and bulk-upload commands.
package upload

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"stash-client/internal/shared/config"
	"stash-client/internal/shared/logging"
	"stash-client/internal/shared/stash"
	"stash-client/internal/shared/ui"
)

func printUsage(fs *flag.FlagSet, usage, detail string) {
	fmt.Fprintf(os.Stderr, "Usage: stash-client %s\n", usage)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, detail)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

// RunAnon uploads a single file anonymously.
func RunAnon(args []string) int {
	fs := flag.NewFlagSet("upload-anon", flag.ContinueOnError)
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, "upload-anon <file> <name>", "Upload a file anonymously under the given destination name.")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	if fs.NArg() < 2 {
		fs.Usage()
		return 1
	}

	client := stash.NewDefault("")
	resp, err := client.UploadAnon(context.Background(), fs.Arg(0), fs.Arg(1))
	return finish(resp, err)
}

// RunAuth uploads a single file into a directory on the account.
func RunAuth(args []string) int {
	fs := flag.NewFlagSet("upload-auth", flag.ContinueOnError)
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, "upload-auth <file> <parent-id> <name> [token]", "Upload a file into the directory identified by parent-id.")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	if fs.NArg() < 3 {
		fs.Usage()
		return 1
	}

	token, ok := resolveToken(opts, fs.Arg(3))
	if !ok {
		return 1
	}

	client := stash.NewDefault(token)
	resp, err := client.UploadAuth(context.Background(), fs.Arg(0), fs.Arg(1), fs.Arg(2))
	return finish(resp, err)
}

// RunLoc uploads a single file anonymously to a storage location.
func RunLoc(args []string) int {
	fs := flag.NewFlagSet("upload-loc", flag.ContinueOnError)
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, "upload-loc <file> <name> <location-id>", "Upload a file anonymously to a specific storage location.")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	if fs.NArg() < 3 {
		fs.Usage()
		return 1
	}

	client := stash.NewDefault("")
	resp, err := client.UploadToLocation(context.Background(), fs.Arg(0), fs.Arg(1), fs.Arg(2))
	return finish(resp, err)
}

// RunNote uploads a single file anonymously with an attached note.
func RunNote(args []string) int {
	fs := flag.NewFlagSet("upload-note", flag.ContinueOnError)
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, "upload-note <file> <name> <note>", "Upload a file anonymously with a note attached.")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	if fs.NArg() < 3 {
		fs.Usage()
		return 1
	}

	client := stash.NewDefault("")
	resp, err := client.UploadWithNote(context.Background(), fs.Arg(0), fs.Arg(1), fs.Arg(2))
	return finish(resp, err)
}

// RunBulk uploads every listed file into one directory, sequentially.
// Missing files are skipped with a warning; failures do not abort the
// remaining uploads.
func RunBulk(args []string) int {
	fs := flag.NewFlagSet("bulk-upload", flag.ContinueOnError)
	tokenFlag := fs.String("token", "", "Account token override for this call")
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, "bulk-upload [flags] <parent-id> <file>...", "Upload files one by one into the directory identified by parent-id.")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: bulk-upload needs a parent id and at least one file")
		fs.Usage()
		return 1
	}

	token, ok := resolveToken(opts, *tokenFlag)
	if !ok {
		return 1
	}

	parentID := fs.Arg(0)
	files := fs.Args()[1:]

	client := stash.NewDefault(token)
	client.BulkUpload(context.Background(), parentID, files, func(r stash.BulkResult) {
		switch {
		case r.Skipped:
			fmt.Println(ui.Warning("skipped %s: file not found", r.Item))
		case r.Err != nil:
			fmt.Println(ui.Failure("%s: %v", r.Item, r.Err))
		default:
			fmt.Println(ui.Success("%s", r.Item))
			if body := stash.Render(r.Response.Body); body != "" {
				fmt.Println(body)
			}
		}
	})

	return 0
}

// resolveToken loads the credential store and applies override
// precedence. On failure it prints the remediation hint and returns
// false.
func resolveToken(opts *config.Options, explicit string) (string, bool) {
	store, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return "", false
	}

	token, err := store.Resolve(explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run \"stash-client set-token <token>\" or pass a token for this call.")
		return "", false
	}

	return token, true
}

// finish renders a single-operation outcome. A transport failure is
// fatal; any HTTP response, success or not, is printed as-is.
func finish(resp *stash.Response, err error) int {
	if err != nil {
		if errors.Is(err, stash.ErrFileNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		}
		return 1
	}

	if body := stash.Render(resp.Body); body != "" {
		fmt.Println(body)
	}
	return 0
}
