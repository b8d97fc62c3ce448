package hashtable

// Observer is told about every Search and Insert once it finishes. attempts
// is the number of buckets visited: always 1 for a ChainedTable, 1..tableSize
// for a BoundedTable.
type Observer interface {
	ObserveSearch(attempts uint, found bool)
	ObserveInsert(attempts uint, inserted bool)
}

type nopObserver struct{}

func (nopObserver) ObserveSearch(uint, bool) {}
func (nopObserver) ObserveInsert(uint, bool) {}

// Option configures a table at construction.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver attaches o to the table. A nil o is ignored.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

func buildOptions(opts []Option) options {
	var o = options{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
