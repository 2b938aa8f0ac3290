package main

import (
	"fmt"
	"os"
	"strings"

	"stash-client/internal/cmd/account"
	"stash-client/internal/cmd/fs"
	"stash-client/internal/cmd/interactive"
	"stash-client/internal/cmd/settoken"
	"stash-client/internal/cmd/upload"
)

const binaryName = "stash-client"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	if len(argv) < 1 {
		printUsage()
		return 1
	}

	sub := strings.ToLower(strings.TrimSpace(argv[0]))
	args := argv[1:]

	switch sub {
	case "set-token":
		return settoken.Run(args)
	case "interactive":
		return interactive.Run(args)
	case "upload-anon":
		return upload.RunAnon(args)
	case "upload-auth":
		return upload.RunAuth(args)
	case "upload-loc":
		return upload.RunLoc(args)
	case "upload-note":
		return upload.RunNote(args)
	case "bulk-upload":
		return upload.RunBulk(args)
	case "locations":
		return account.RunLocations(args)
	case "account":
		return account.RunAccount(args)
	case "get-root":
		return fs.RunGetRoot(args)
	case "get-dir":
		return fs.RunGetDir(args)
	case "create-dir":
		return fs.RunCreateDir(args)
	case "rename-dir":
		return fs.RunRename("rename-dir")(args)
	case "rename-file":
		return fs.RunRename("rename-file")(args)
	case "move-dir":
		return fs.RunMove("move-dir")(args)
	case "move-file":
		return fs.RunMove("move-file")(args)
	case "add-note-file":
		return fs.RunAddNote(args)
	case "delete-dir":
		return fs.RunDelete(args)
	case "bulk-delete":
		return fs.RunBulkDelete(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n\n", sub)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [arguments]\n\n", binaryName)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  set-token      Persist the account token")
	fmt.Fprintln(os.Stderr, "  interactive    Open the interactive menu")
	fmt.Fprintln(os.Stderr, "  upload-anon    Upload a file anonymously")
	fmt.Fprintln(os.Stderr, "  upload-auth    Upload a file into a directory")
	fmt.Fprintln(os.Stderr, "  upload-loc     Upload a file to a storage location")
	fmt.Fprintln(os.Stderr, "  upload-note    Upload a file with a note")
	fmt.Fprintln(os.Stderr, "  bulk-upload    Upload several files into one directory")
	fmt.Fprintln(os.Stderr, "  locations      List storage locations")
	fmt.Fprintln(os.Stderr, "  account        Show account details")
	fmt.Fprintln(os.Stderr, "  get-root       List the root directory")
	fmt.Fprintln(os.Stderr, "  get-dir        List a directory by id")
	fmt.Fprintln(os.Stderr, "  create-dir     Create a directory")
	fmt.Fprintln(os.Stderr, "  rename-dir     Rename a directory")
	fmt.Fprintln(os.Stderr, "  rename-file    Rename a file")
	fmt.Fprintln(os.Stderr, "  move-dir       Move a directory")
	fmt.Fprintln(os.Stderr, "  move-file      Move a file")
	fmt.Fprintln(os.Stderr, "  add-note-file  Attach a note to a file")
	fmt.Fprintln(os.Stderr, "  delete-dir     Delete a directory")
	fmt.Fprintln(os.Stderr, "  bulk-delete    Delete several entries")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "Use \"%s <command> -h\" for command-specific help.\n", binaryName)
}
