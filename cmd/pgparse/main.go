// pgparse parses SQL from files or standard input and prints either the
// statement trees or the deparsed SQL text.
package main

import (
	"log/slog"
	"os"

	"github.com/pgsql-tw/portable-pgsql/cmd/pgparse/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
