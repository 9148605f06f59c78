package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pgsql-tw/portable-pgsql/parser"
)

var (
	format   string
	maxDepth int

	// Root is the pgparse command.
	Root = &cobra.Command{
		Use:   "pgparse [flags] [file ...]",
		Short: "Parse SQL and print the statement trees",
		Long: "pgparse parses PostgreSQL-dialect SQL from the given files, or from\n" +
			"standard input when no files are named, and prints one line per\n" +
			"statement: the parse tree, the deparsed SQL with --format=sql, or\n" +
			"the tree as JSON with --format=json.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	Root.Flags().StringVar(&format, "format", "ast", "output format: ast, sql or json")
	Root.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum statement nesting depth")
	Root.Flags().AddFlagSet(pflag.CommandLine)
}

func run(cmd *cobra.Command, args []string) error {
	switch format {
	case "ast", "sql", "json":
	default:
		return fmt.Errorf("unknown format %q, want ast, sql or json", format)
	}

	if len(args) == 0 {
		sql, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
		return parseAndPrint(cmd.OutOrStdout(), "<stdin>", string(sql))
	}

	for _, name := range args {
		sql, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		if err := parseAndPrint(cmd.OutOrStdout(), name, string(sql)); err != nil {
			return err
		}
	}
	return nil
}

func parseAndPrint(w io.Writer, source, sql string) error {
	p := parser.NewParser(parser.Options{MaxDepth: maxDepth})
	stmts, err := p.Parse(sql)
	if err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			return fmt.Errorf("%s: %w", source, perr)
		}
		return err
	}
	if format == "json" {
		out, err := json.MarshalIndent(stmts, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", source, err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}
	for _, stmt := range stmts {
		if format == "sql" {
			fmt.Fprintln(w, stmt.SqlString()+";")
		} else {
			fmt.Fprintln(w, stmt.String())
		}
	}
	return nil
}
