/*
Package metrics counts what a hash table does, for display in the command
line tool and for export in the Prometheus text format.

A Collector is a hashtable.Observer and a prometheus.Collector at once: attach
it to a table with hashtable.WithObserver and register it on any
prometheus.Registerer.
*/
package metrics

import (
	"sync"

	"github.com/lleo/go-hashtable"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opSearch = "search"
	opInsert = "insert"

	resultHit  = "hit"
	resultMiss = "miss"
	resultOK   = "ok"
	resultFull = "full"
)

var _ hashtable.Observer = (*Collector)(nil)
var _ prometheus.Collector = (*Collector)(nil)

// Collector records every Search and Insert of the tables it observes. It is
// safe for concurrent use.
type Collector struct {
	attempts *prometheus.HistogramVec
	ops      *prometheus.CounterVec

	mu    sync.Mutex
	stats Stats
}

// NewCollector builds an unregistered Collector whose metrics carry the given
// namespace, eg "hashtable_search_attempts".
func NewCollector(namespace string) *Collector {
	var c = new(Collector)

	c.attempts = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "attempts",
		Help:      "Buckets visited per operation by op",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"op"})

	c.ops = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of operations by op and result",
	}, []string{"op", "result"})

	return c
}

// ObserveSearch is required for hashtable.Observer
func (c *Collector) ObserveSearch(attempts uint, found bool) {
	var result = resultMiss
	if found {
		result = resultHit
	}
	c.attempts.WithLabelValues(opSearch).Observe(float64(attempts))
	c.ops.WithLabelValues(opSearch, result).Inc()

	c.mu.Lock()
	c.stats.Searches++
	if found {
		c.stats.Found++
	}
	c.stats.SearchAttempts += uint64(attempts)
	c.stats.MaxSearchAttempts = max(c.stats.MaxSearchAttempts, uint64(attempts))
	c.mu.Unlock()
}

// ObserveInsert is required for hashtable.Observer
func (c *Collector) ObserveInsert(attempts uint, inserted bool) {
	var result = resultFull
	if inserted {
		result = resultOK
	}
	c.attempts.WithLabelValues(opInsert).Observe(float64(attempts))
	c.ops.WithLabelValues(opInsert, result).Inc()

	c.mu.Lock()
	c.stats.Inserts++
	if inserted {
		c.stats.Inserted++
	}
	c.stats.InsertAttempts += uint64(attempts)
	c.stats.MaxInsertAttempts = max(c.stats.MaxInsertAttempts, uint64(attempts))
	c.mu.Unlock()
}

// Stats returns a snapshot of the totals seen so far.
func (c *Collector) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Describe is required for prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.attempts.Describe(ch)
	c.ops.Describe(ch)
}

// Collect is required for prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.attempts.Collect(ch)
	c.ops.Collect(ch)
}
