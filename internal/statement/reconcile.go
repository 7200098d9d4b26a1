package statement

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kontigo/kontigo/internal/banking"
)

var (
	ErrEmptyBatch       = errors.New("statement batch is empty")
	ErrNoClosingBalance = errors.New("statement batch has no closing balance")
)

// Entry is one line after reconciliation: the wrapped source line plus
// the running balance immediately after it and, once assigned, its
// intraday sequence number.
type Entry struct {
	Line         Line
	Sequence     int
	BalanceAfter decimal.Decimal
}

// Reconcile assigns a running balance to every line of the batch,
// seeded only from the source's closing balance. Some backends report
// a wrong opening balance but a correct closing balance, so the
// balance before the first line is derived backwards:
//
//	opening = closing - sum(amounts)
//
// then a forward pass applies each amount. The balance after the last
// line always equals the closing balance exactly.
//
// An empty batch or a missing closing balance rejects the whole batch;
// no entries are produced.
func Reconcile(batch *banking.Batch) ([]Entry, error) {
	if batch.Empty() {
		return nil, ErrEmptyBatch
	}
	if batch.ClosingBalance == nil {
		return nil, ErrNoClosingBalance
	}

	running := batch.ClosingBalance.Amount
	for i := range batch.Lines {
		running = running.Sub(batch.Lines[i].Amount)
	}

	entries := make([]Entry, 0, len(batch.Lines))
	for i := range batch.Lines {
		running = running.Add(batch.Lines[i].Amount)
		entries = append(entries, Entry{
			Line:         Wrap(&batch.Lines[i]),
			BalanceAfter: running,
		})
	}
	return entries, nil
}

// Opening returns the balance immediately before the first line of the
// batch, derived from the closing balance.
func Opening(batch *banking.Batch) decimal.Decimal {
	running := batch.ClosingBalance.Amount
	for i := range batch.Lines {
		running = running.Sub(batch.Lines[i].Amount)
	}
	return running
}
