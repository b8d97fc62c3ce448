package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lleo/go-hashtable/key"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func newFillCmd(opts *rootOptions) *cobra.Command {
	var seed uint64
	var first string
	var interactive bool

	var cmd = &cobra.Command{
		Use:   "fill <count>",
		Short: "Insert count generated keys and report how the table coped",
		Long: "Insert count generated keys and report how the table coped.\n" +
			"\n" +
			"With --key-type nif the keys are random 8 digit nifs drawn with --seed.\n" +
			"With --key-type person they are consecutive ids starting at --first.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var count, err = cast.ToIntE(args[0])
			if err != nil || count < 0 {
				return errors.Errorf("count must be a non-negative integer, got %q", args[0])
			}

			var s *session
			if s, err = newSession(cmd, opts); err != nil {
				return err
			}

			var ks []key.Key
			if s.keyType == keyTypePerson {
				ks, err = personKeys(first, count)
			} else {
				if !cmd.Flags().Changed("seed") {
					seed = uint64(time.Now().UnixNano())
				}
				ks = nifKeys(seed, count)
			}
			if err != nil {
				return err
			}

			var start = time.Now()
			var failed int
			for _, k := range ks {
				if !s.table.Insert(k) {
					failed++
				}
			}
			var elapsed = time.Since(start)

			fmt.Fprintf(s.out, "filled %s keys in %s, %s rejected\n",
				humanize.Comma(int64(count)), elapsed, humanize.Comma(int64(failed)))
			fmt.Fprint(s.out, s.report())

			if interactive {
				if err = runMenu(s, surveyPrompter{}); err != nil {
					return err
				}
			}
			return s.finish()
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random nifs (default: current time)")
	cmd.Flags().StringVar(&first, "first", "alu0000000", "First person id")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Show the menu after filling")

	return cmd
}

func nifKeys(seed uint64, count int) []key.Key {
	var r = rand.New(rand.NewPCG(seed, seed))
	var ks = make([]key.Key, count)
	for i := range ks {
		ks[i] = key.RandomNif(r)
	}
	return ks
}

func personKeys(first string, count int) ([]key.Key, error) {
	var ps, err = key.SequentialPersons(first, count)
	if err != nil {
		return nil, err
	}
	var ks = make([]key.Key, len(ps))
	for i, p := range ps {
		ks[i] = p
	}
	return ks, nil
}
