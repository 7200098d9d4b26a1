package statement

import (
	"sort"
	"time"

	"github.com/kontigo/kontigo/internal/banking"
)

// AssignSequence numbers the entries within each calendar day: 1-based,
// dense, in entry order. A new day resets the counter.
//
// Precondition: entries are in source order and the source delivers
// same-day transactions in chronological order. This is assumed, not
// verified; sources that deliver unordered batches must go through
// Sort before reconciliation.
func AssignSequence(entries []Entry) {
	var lastDay time.Time
	counter := 0
	for i := range entries {
		day := entries[i].Line.Date()
		if day.Equal(lastDay) {
			counter++
		} else {
			counter = 1
			lastDay = day
		}
		entries[i].Sequence = counter
	}
}

// Sort orders a batch's lines by date, keeping the arrival order of
// same-day lines. Only needed for sources that do not deliver batches
// in date order.
func Sort(batch *banking.Batch) {
	sort.SliceStable(batch.Lines, func(i, j int) bool {
		return batch.Lines[i].Date.Before(batch.Lines[j].Date)
	})
}
