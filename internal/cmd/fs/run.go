// Package fs implements the directory and file management commands:
// get-root, get-dir, create-dir, rename-dir, rename-file, move-dir,
// move-file, add-note-file, delete-dir and bulk-delete.
package fs

import (
	"context"
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

// RunGetRoot lists the account's root directory.
func RunGetRoot(args []string) int {
	return runSimple("get-root", "get-root [token]",
		"List the contents of the account's root directory.",
		args, 0,
		func(ctx context.Context, c *stash.Client, _ []string) (*stash.Response, error) {
			return c.GetRoot(ctx)
		})
}

// RunGetDir lists the directory identified by id.
func RunGetDir(args []string) int {
	return runSimple("get-dir", "get-dir <id> [token]",
		"List the contents of the directory identified by id.",
		args, 1,
		func(ctx context.Context, c *stash.Client, pos []string) (*stash.Response, error) {
			return c.GetDir(ctx, pos[0])
		})
}

// RunCreateDir creates a directory under a parent.
func RunCreateDir(args []string) int {
	return runSimple("create-dir", "create-dir <name> <parent-id> [token]",
		"Create a directory with the given name under parent-id.",
		args, 2,
		func(ctx context.Context, c *stash.Client, pos []string) (*stash.Response, error) {
			return c.CreateDir(ctx, pos[0], pos[1])
		})
}

// RunRename renames a directory or file entry. Shared by rename-dir
// and rename-file, which hit the same endpoint.
func RunRename(name string) func(args []string) int {
	return func(args []string) int {
		return runSimple(name, name+" <id> <new-name> [token]",
			"Rename the entry identified by id.",
			args, 2,
			func(ctx context.Context, c *stash.Client, pos []string) (*stash.Response, error) {
				return c.Rename(ctx, pos[0], pos[1])
			})
	}
}

// RunMove reparents a directory or file entry. Shared by move-dir and
// move-file.
func RunMove(name string) func(args []string) int {
	return func(args []string) int {
		return runSimple(name, name+" <id> <new-parent-id> [token]",
			"Move the entry identified by id under a new parent.",
			args, 2,
			func(ctx context.Context, c *stash.Client, pos []string) (*stash.Response, error) {
				return c.Move(ctx, pos[0], pos[1])
			})
	}
}

// RunAddNote attaches a note to a file entry.
func RunAddNote(args []string) int {
	return runSimple("add-note-file", "add-note-file <id> <note> [token]",
		"Attach a note to the file identified by id.",
		args, 2,
		func(ctx context.Context, c *stash.Client, pos []string) (*stash.Response, error) {
			return c.AddNote(ctx, pos[0], pos[1])
		})
}

// RunDelete removes a directory entry.
func RunDelete(args []string) int {
	return runSimple("delete-dir", "delete-dir <id> [token]",
		"Delete the directory identified by id.",
		args, 1,
		func(ctx context.Context, c *stash.Client, pos []string) (*stash.Response, error) {
			return c.Delete(ctx, pos[0])
		})
}

// RunBulkDelete deletes every listed entry, one request per id, in
// order. Failures do not abort the remaining deletes.
func RunBulkDelete(args []string) int {
	fs := flag.NewFlagSet("bulk-delete", flag.ContinueOnError)
	tokenFlag := fs.String("token", "", "Account token override for this call")
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, "bulk-delete [flags] <id>...", "Delete entries one by one.")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: bulk-delete needs at least one id")
		fs.Usage()
		return 1
	}

	token, ok := resolveToken(opts, *tokenFlag)
	if !ok {
		return 1
	}

	client := stash.NewDefault(token)
	client.BulkDelete(context.Background(), fs.Args(), func(r stash.BulkResult) {
		if r.Err != nil {
			fmt.Println(ui.Failure("%s: %v", r.Item, r.Err))
			return
		}
		fmt.Println(ui.Success("%s", r.Item))
		if body := stash.Render(r.Response.Body); body != "" {
			fmt.Println(body)
		}
	})

	return 0
}

// runSimple handles the fixed-arity authenticated commands: parse
// flags and positionals, resolve the credential (trailing positional
// token override), issue the request, render the body.
func runSimple(name, usage, detail string, args []string, arity int, call func(context.Context, *stash.Client, []string) (*stash.Response, error)) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := &config.Options{}
	config.AddFlags(fs, opts)
	fs.Usage = func() {
		printUsage(fs, usage, detail)
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	logging.Init(opts.Verbose)

	if fs.NArg() < arity {
		fs.Usage()
		return 1
	}

	token, ok := resolveToken(opts, fs.Arg(arity))
	if !ok {
		return 1
	}

	client := stash.NewDefault(token)
	resp, err := call(context.Background(), client, fs.Args()[:arity])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		return 1
	}

	if body := stash.Render(resp.Body); body != "" {
		fmt.Println(body)
	}
	return 0
}

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
