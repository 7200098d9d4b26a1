package banking

import (
	"time"

	"github.com/shopspring/decimal"
)

// SEPAAccount is one account as reported by the banking backend during
// account discovery.
type SEPAAccount struct {
	Number string
	IBAN   string
	BIC    string
}

// RawLine is one transaction exactly as the source delivered it.
// Optional text fields are pointers so that "never provided" stays
// distinguishable from "provided and empty".
type RawLine struct {
	Date                        time.Time
	Amount                      decimal.Decimal
	Currency                    string
	ApplicantName               *string
	ApplicantIBAN               *string
	PostingText                 *string
	Purpose                     *string
	AdditionalPurpose           *string
	AdditionalPositionReference *string
	ApplicantCreditorID         *string
	EndToEndReference           *string
	PrimaNota                   *string
	ReturnDebitNotes            *string
	TransactionCode             *string
}

// Balance is a balance record reported by the source.
type Balance struct {
	Amount   decimal.Decimal
	Currency string
	Date     time.Time
}

// Batch is the ordered result of one statement fetch: the lines in
// source order plus the source's own closing balance. The opening
// balance is deliberately not part of the contract, some backends
// report it wrong while the closing balance is correct.
type Batch struct {
	Lines          []RawLine
	ClosingBalance *Balance
}

// Empty reports whether the fetch returned nothing to reconcile.
func (b *Batch) Empty() bool {
	return b == nil || len(b.Lines) == 0
}
