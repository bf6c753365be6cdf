package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BusinessFinder/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("BusinessFinder"), kong.Description("BusinessFinder finds nearby businesses and manages the business directory."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
