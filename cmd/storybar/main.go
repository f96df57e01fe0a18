// Command storybar plays feed items as timed stories in the terminal.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("storybar"),
		kong.Description("Play RSS/Atom items as timed stories in the terminal."),
		kong.UsageOnError(),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}
