package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontigo/kontigo/internal/banking"
)

func TestAssignSequence(t *testing.T) {
	entries, err := Reconcile(testBatch())
	require.NoError(t, err)

	AssignSequence(entries)

	assert.Equal(t, 1, entries[0].Sequence)
	assert.Equal(t, 2, entries[1].Sequence)
	assert.Equal(t, 1, entries[2].Sequence)
}

func TestAssignSequence_ResetsRegardlessOfPriorMaximum(t *testing.T) {
	batch := &banking.Batch{
		Lines: []banking.RawLine{
			line(date(2024, 2, 1), "-1.00"),
			line(date(2024, 2, 1), "-1.00"),
			line(date(2024, 2, 1), "-1.00"),
			line(date(2024, 2, 2), "-1.00"),
			line(date(2024, 2, 2), "-1.00"),
		},
		ClosingBalance: &banking.Balance{Amount: dec("0.00")},
	}

	entries, err := Reconcile(batch)
	require.NoError(t, err)
	AssignSequence(entries)

	got := make([]int, len(entries))
	for i, e := range entries {
		got[i] = e.Sequence
	}
	assert.Equal(t, []int{1, 2, 3, 1, 2}, got)
}

func TestSort_UnorderedBatchSequencesCorrectly(t *testing.T) {
	// An out-of-order source must be sorted by date (stable, keeping
	// arrival order within a day) before reconciliation.
	batch := &banking.Batch{
		Lines: []banking.RawLine{
			line(date(2024, 2, 3), "-3.00"),
			line(date(2024, 2, 1), "-1.00"),
			line(date(2024, 2, 3), "-4.00"),
			line(date(2024, 2, 1), "-2.00"),
		},
		ClosingBalance: &banking.Balance{Amount: dec("90.00")},
	}

	Sort(batch)
	entries, err := Reconcile(batch)
	require.NoError(t, err)
	AssignSequence(entries)

	require.Len(t, entries, 4)
	assert.Equal(t, "2024-02-01", entries[0].Line.Display(FieldDate))
	assert.True(t, dec("-1.00").Equal(entries[0].Line.Amount()), "arrival order within the day must survive the sort")
	assert.Equal(t, 1, entries[0].Sequence)
	assert.Equal(t, 2, entries[1].Sequence)
	assert.Equal(t, 1, entries[2].Sequence)
	assert.Equal(t, 2, entries[3].Sequence)
	assert.True(t, dec("90.00").Equal(entries[3].BalanceAfter))
}
