package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newScriptCmd(opts *rootOptions) *cobra.Command {
	var keepGoing bool

	var cmd = &cobra.Command{
		Use:   "script [file]",
		Short: "Run insert and search operations read from a file or stdin",
		Long: "Run insert and search operations read from a file or, without one, stdin.\n" +
			"\n" +
			"One operation per line:\n" +
			"\n" +
			"    insert <id>\n" +
			"    search <id>\n" +
			"    stats\n" +
			"    show\n" +
			"\n" +
			"Blank lines and lines starting with # are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s, err = newSession(cmd, opts)
			if err != nil {
				return err
			}

			var in = cmd.InOrStdin()
			var name = "stdin"
			if len(args) == 1 {
				var f *os.File
				if f, err = os.Open(args[0]); err != nil {
					return errors.Wrapf(err, "failed to open script %q", args[0])
				}
				defer f.Close()
				in, name = f, args[0]
			}

			if err = runScript(s, in, name, keepGoing); err != nil {
				return err
			}
			return s.finish()
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Report bad lines and carry on instead of stopping")

	return cmd
}

// runScript executes every line of r against s. name is only used in error
// messages.
func runScript(s *session, r io.Reader, name string, keepGoing bool) error {
	var scanner = bufio.NewScanner(r)
	var lineno int

	for scanner.Scan() {
		lineno++

		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := runLine(s, line); err != nil {
			err = errors.Wrapf(err, "%s:%d", name, lineno)
			if !keepGoing {
				return err
			}
			fmt.Fprintln(s.out, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	return nil
}

func runLine(s *session, line string) error {
	var fields = strings.Fields(line)
	var op = strings.ToLower(fields[0])

	switch op {
	case "insert", "search":
		if len(fields) != 2 {
			return errors.Errorf("%s wants exactly one id, got %d", op, len(fields)-1)
		}

		var result string
		var err error
		if op == "insert" {
			result, err = s.insert(fields[1])
		} else {
			result, err = s.search(fields[1])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s %s: %s\n", op, fields[1], result)

	case "stats":
		fmt.Fprint(s.out, s.report())

	case "show":
		fmt.Fprintln(s.out, s.table.LongString(""))

	default:
		return errors.Errorf("unknown operation %q", fields[0])
	}
	return nil
}
