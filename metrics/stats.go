package metrics

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats are plain running totals kept alongside the Prometheus metrics.
type Stats struct {
	Searches          uint64
	Found             uint64
	SearchAttempts    uint64
	MaxSearchAttempts uint64

	Inserts           uint64
	Inserted          uint64
	InsertAttempts    uint64
	MaxInsertAttempts uint64
}

// MeanSearchAttempts is 0 before the first Search.
func (s Stats) MeanSearchAttempts() float64 {
	if s.Searches == 0 {
		return 0
	}
	return float64(s.SearchAttempts) / float64(s.Searches)
}

// MeanInsertAttempts is 0 before the first Insert.
func (s Stats) MeanInsertAttempts() float64 {
	if s.Inserts == 0 {
		return 0
	}
	return float64(s.InsertAttempts) / float64(s.Inserts)
}

// Report renders s for people: counts with thousands separators and mean
// attempts to two decimals.
func (s Stats) Report() string {
	return fmt.Sprintf(
		"searches: %s (found %s), attempts mean %s max %s\n"+
			"inserts:  %s (inserted %s, full %s), attempts mean %s max %s\n",
		humanize.Comma(int64(s.Searches)), humanize.Comma(int64(s.Found)),
		humanize.CommafWithDigits(s.MeanSearchAttempts(), 2), humanize.Comma(int64(s.MaxSearchAttempts)),
		humanize.Comma(int64(s.Inserts)), humanize.Comma(int64(s.Inserted)),
		humanize.Comma(int64(s.Inserts-s.Inserted)),
		humanize.CommafWithDigits(s.MeanInsertAttempts(), 2), humanize.Comma(int64(s.MaxInsertAttempts)),
	)
}
