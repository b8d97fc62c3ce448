package hashtable_test

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/lleo/go-hashtable"
	"github.com/lleo/go-hashtable/dispersion"
	"github.com/lleo/go-hashtable/exploration"
	"github.com/lleo/go-hashtable/key"
	"github.com/pkg/errors"
)

var numKeys = 16 * 1024

// KEYS are inserted into TestTable by initialize(); MISSING never are.
var KEYS []key.Key
var MISSING []key.Key

var TestTable hashtable.Table

var TopologyOption hashtable.Topology

var StartTime = make(map[string]time.Time)
var RunTime = make(map[string]time.Duration)

func TestMain(m *testing.M) {
	var chainedonly, boundedonly, all bool
	flag.BoolVar(&chainedonly, "C", false, "Run TestTable tests against a chained table only.")
	flag.BoolVar(&boundedonly, "B", false, "Run TestTable tests against a bounded table only.")
	flag.BoolVar(&all, "A", false, "Run TestTable tests against a chained then a bounded table.")

	flag.Parse()

	if !all && chainedonly && boundedonly {
		flag.PrintDefaults()
		os.Exit(1)
	}

	// If no flags given, run all tests.
	if !(all || chainedonly || boundedonly) {
		all = true
	}

	log.SetFlags(log.Lshortfile)

	var logfile, err = os.Create("test.log")
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to os.Create(\"test.log\")"))
	}

	log.SetOutput(logfile)
	hashtable.Lgr.SetOutput(logfile)

	log.Println("TestMain: and so it begins...")

	KEYS = buildKeys("alu0000000", numKeys)
	MISSING = buildKeys("pas0000000", numKeys/4)

	var topologies []hashtable.Topology
	switch {
	case all:
		topologies = []hashtable.Topology{hashtable.Chained, hashtable.Bounded}
	case chainedonly:
		topologies = []hashtable.Topology{hashtable.Chained}
	default:
		topologies = []hashtable.Topology{hashtable.Bounded}
	}

	var xit int
	for _, topology := range topologies {
		TopologyOption = topology
		log.Printf("TestMain: TopologyOption=%s\n", TopologyOption)
		initialize()
		xit = m.Run()
		if xit != 0 {
			break
		}
	}

	log.Println("\n", RunTimes())
	log.Println("TestMain: the end.")

	logfile.Close()
	os.Exit(xit)
}

func RunTimes() string {
	var s = ""

	s += "Key                                                               Val\n"
	s += "=================================================================+==========\n"

	for name, val := range RunTime {
		s += fmt.Sprintf("%-65s %s\n", name, val)
	}
	return s
}

// testConfig is the TestTable configuration for a topology. The bounded
// table has room for twice numKeys.
func testConfig(topology hashtable.Topology) hashtable.Config {
	var cfg = hashtable.Config{
		TableSize:  1031,
		Dispersion: dispersion.XXHashCode,
		Topology:   topology,
	}
	if topology == hashtable.Bounded {
		cfg.BlockSize = 32
		cfg.Exploration = exploration.LinearCode
	}
	return cfg
}

func initialize() {
	var metricName = fmt.Sprintf("initialize: build TestTable %s", TopologyOption)
	StartTime[metricName] = time.Now()

	var t, err = hashtable.New(testConfig(TopologyOption))
	if err != nil {
		log.Fatalf("initialize: hashtable.New failed: %s", err)
	}

	for _, k := range genRandomizedKeys(KEYS) {
		if !t.Insert(k) {
			log.Fatalf("initialize: failed to t.Insert(%s); t=%s", k, t)
		}
	}
	TestTable = t

	RunTime[metricName] = time.Since(StartTime[metricName])
}

func buildKeys(first string, num int) []key.Key {
	var ps, err = key.SequentialPersons(first, num)
	if err != nil {
		log.Fatal(errors.Wrapf(err, "buildKeys(%q, %d)", first, num))
	}

	var ks = make([]key.Key, len(ps))
	for i, p := range ps {
		ks[i] = p
	}
	return ks
}

func genRandomizedKeys(ks []key.Key) []key.Key {
	var randKeys = make([]key.Key, len(ks))
	copy(randKeys, ks)

	//From: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle#The_modern_algorithm
	for i := len(randKeys) - 1; i > 0; i-- {
		var j = rand.IntN(i + 1)
		randKeys[i], randKeys[j] = randKeys[j], randKeys[i]
	}

	return randKeys
}
