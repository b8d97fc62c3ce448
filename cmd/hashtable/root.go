package main

import (
	"fmt"
	"io"
	"log"

	"github.com/lleo/go-hashtable"
	"github.com/lleo/go-hashtable/config"
	"github.com/lleo/go-hashtable/key"
	"github.com/lleo/go-hashtable/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	envFile    string
	keyType    string
	metricsOut string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	var cmd = &cobra.Command{
		Use:   "hashtable",
		Short: "Build a hash table and insert or search keys in it",
		Long: "Hash table - search by dispersion\n" +
			"\n" +
			"The table is described by a table size, a dispersion function and a\n" +
			"collision strategy. With --hash open every bucket is an unbounded list.\n" +
			"With --hash close every bucket holds at most --bs keys and an exploration\n" +
			"function picks the next bucket to try.\n" +
			"\n" +
			"Dispersion functions (--fd):\n" +
			"    1  modulo\n" +
			"    2  digit sum\n" +
			"    3  pseudo-random\n" +
			"    4  xxhash\n" +
			"\n" +
			"Exploration functions (--fe, close only):\n" +
			"    1  linear\n" +
			"    2  quadratic\n" +
			"    3  double hashing\n" +
			"    4  redispersion\n" +
			"\n" +
			"Options may also come from a YAML file (--config) and from HASHTABLE_*\n" +
			"environment variables, which may be kept in a .env file. Flags win over\n" +
			"the environment, which wins over the file.\n" +
			"\n" +
			"Without a subcommand an interactive menu is shown.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.envFile != "" {
				return config.LoadDotenv(opts.envFile)
			}
			return config.LoadDotenv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var s, err = newSession(cmd, &opts)
			if err != nil {
				return err
			}
			if err = runMenu(s, surveyPrompter{}); err != nil {
				return err
			}
			return s.finish()
		},
	}

	var pflags = cmd.PersistentFlags()
	config.BindFlags(pflags)
	pflags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with table options")
	pflags.StringVar(&opts.envFile, "env-file", "", "Load environment variables from this file instead of .env")
	pflags.StringVarP(&opts.keyType, "key-type", "k", keyTypeNif,
		fmt.Sprintf("Kind of key stored: %s (8 digits) or %s (eg alu0101140)", keyTypeNif, keyTypePerson))
	pflags.StringVar(&opts.metricsOut, "metrics-out", "",
		"On exit, write operation metrics in Prometheus text format to this file")

	cmd.AddCommand(newScriptCmd(&opts))
	cmd.AddCommand(newFillCmd(&opts))

	return cmd
}

const (
	keyTypeNif    = "nif"
	keyTypePerson = "person"
)

func parseNif(s string) (key.Key, error) {
	var k, err = key.ParseNif(s)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func parsePerson(s string) (key.Key, error) {
	var k, err = key.ParsePerson(s)
	if err != nil {
		return nil, err
	}
	return k, nil
}

var keyParsers = map[string]func(string) (key.Key, error){
	keyTypeNif:    parseNif,
	keyTypePerson: parsePerson,
}

// session is one table plus everything the commands need to drive it.
type session struct {
	table      hashtable.Table
	collector  *metrics.Collector
	keyType    string
	parseKey   func(string) (key.Key, error)
	out        io.Writer
	metricsOut string
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	var parse, ok = keyParsers[opts.keyType]
	if !ok {
		return nil, errors.Errorf("unknown --key-type %q; want %s or %s", opts.keyType, keyTypeNif, keyTypePerson)
	}

	var cfg, err = config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	var collector = metrics.NewCollector("hashtable")

	var table hashtable.Table
	table, err = hashtable.New(cfg, hashtable.WithObserver(collector))
	if err != nil {
		return nil, err
	}
	log.Printf("newSession: built %s from %s", table, cfg)

	return &session{
		table:      table,
		collector:  collector,
		keyType:    opts.keyType,
		parseKey:   parse,
		out:        cmd.OutOrStdout(),
		metricsOut: opts.metricsOut,
	}, nil
}

func (s *session) insert(id string) (string, error) {
	var k, err = s.parseKey(id)
	if err != nil {
		return "", err
	}
	if s.table.Insert(k) {
		return "inserted", nil
	}
	return "full", nil
}

func (s *session) search(id string) (string, error) {
	var k, err = s.parseKey(id)
	if err != nil {
		return "", err
	}
	if s.table.Search(k) {
		return "found", nil
	}
	return "not found", nil
}

// report is the table summary followed by the collected totals.
func (s *session) report() string {
	return tableSummary(s.table) + s.collector.Stats().Report()
}

// finish writes the metrics file, if one was asked for.
func (s *session) finish() error {
	if s.metricsOut == "" {
		return nil
	}

	var reg = prometheus.NewRegistry()
	if err := reg.Register(s.collector); err != nil {
		return errors.Wrap(err, "failed to register metrics")
	}
	if err := prometheus.WriteToTextfile(s.metricsOut, reg); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %q", s.metricsOut)
	}
	return nil
}
