package commands

import (
	"github.com/atotto/clipboard"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// Replaced in tests.
var (
	newCommandContext = cli.NewCommandContext
	writeClipboard    = clipboard.WriteAll
)

// loadDocument imports path and warns about keys that collapsed on import.
func loadDocument(ctx *cli.CommandContext, path string) (models.Root, error) {
	root, dups, err := ctx.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	for _, d := range dups {
		where := d.Path
		if where == "" {
			where = "/"
		}
		cli.PrintWarning("Duplicate key %q in object %s; the last value wins", d.Key, where)
	}
	return root, nil
}
