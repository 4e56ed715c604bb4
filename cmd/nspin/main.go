package main

import (
	"context"

	"github.com/elseano/nspin/cmd/nspin/cmd"
	"github.com/thecodeteam/goodbye"
)

var GitCommit string
var Version string

func main() {
	ctx := context.Background()
	defer goodbye.Exit(ctx, -1)

	// Spinners register a goodbye handler which clears their rows.
	goodbye.Notify(ctx)

	goodbye.Exit(ctx, cmd.ExitCode(cmd.Execute(Version, GitCommit)))
}
