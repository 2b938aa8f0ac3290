package interactive

import (
	"context"

	"stash-client/internal/shared/stash"
)

// operation describes one menu entry: the prompts it needs and the
// mapper call it makes. Operations with needsAuth set resolve the
// stored credential before running.
type operation struct {
	title     string
	prompts   []string
	needsAuth bool
	invoke    func(ctx context.Context, c *stash.Client, answers []string) (*stash.Response, error)
}

// The fixed menu. Option 11 (quit) is handled by the model directly.
var operations = []operation{
	{
		title:   "Upload file (anonymous)",
		prompts: []string{"Local file path", "Destination name"},
		invoke: func(ctx context.Context, c *stash.Client, a []string) (*stash.Response, error) {
			return c.UploadAnon(ctx, a[0], a[1])
		},
	},
	{
		title:     "Upload file (to folder)",
		prompts:   []string{"Local file path", "Parent directory id", "Destination name"},
		needsAuth: true,
		invoke: func(ctx context.Context, c *stash.Client, a []string) (*stash.Response, error) {
			return c.UploadAuth(ctx, a[0], a[1], a[2])
		},
	},
	{
		title:   "Upload file (to location)",
		prompts: []string{"Local file path", "Destination name", "Storage location id"},
		invoke: func(ctx context.Context, c *stash.Client, a []string) (*stash.Response, error) {
			return c.UploadToLocation(ctx, a[0], a[1], a[2])
		},
	},
	{
		title:   "Upload file (with note)",
		prompts: []string{"Local file path", "Destination name", "Note"},
		invoke: func(ctx context.Context, c *stash.Client, a []string) (*stash.Response, error) {
			return c.UploadWithNote(ctx, a[0], a[1], a[2])
		},
	},
	{
		title:     "Show account",
		needsAuth: true,
		invoke: func(ctx context.Context, c *stash.Client, _ []string) (*stash.Response, error) {
			return c.Account(ctx)
		},
	},
	{
		title: "List storage locations",
		invoke: func(ctx context.Context, c *stash.Client, _ []string) (*stash.Response, error) {
			return c.Locations(ctx)
		},
	},
	{
		title:     "Browse directory",
		prompts:   []string{"Directory id (empty for root)"},
		needsAuth: true,
		invoke: func(ctx context.Context, c *stash.Client, a []string) (*stash.Response, error) {
			if a[0] == "" {
				return c.GetRoot(ctx)
			}
			return c.GetDir(ctx, a[0])
		},
	},
	{
		title:     "Create directory",
		prompts:   []string{"Directory name", "Parent directory id"},
		needsAuth: true,
		invoke: func(ctx context.Context, c *stash.Client, a []string) (*stash.Response, error) {
			return c.CreateDir(ctx, a[0], a[1])
		},
	},
	{
		title:     "Rename entry",
		prompts:   []string{"Entry id", "New name"},
		needsAuth: true,
		invoke: func(ctx context.Context, c *stash.Client, a []string) (*stash.Response, error) {
			return c.Rename(ctx, a[0], a[1])
		},
	},
	{
		title:     "Move entry",
		prompts:   []string{"Entry id", "New parent directory id"},
		needsAuth: true,
		invoke: func(ctx context.Context, c *stash.Client, a []string) (*stash.Response, error) {
			return c.Move(ctx, a[0], a[1])
		},
	},
}
