package store

import "github.com/shopspring/decimal"

type Account struct {
	ID     int64
	BLZ    string
	User   string
	Number string
	IBAN   *string
	BIC    *string
}

// StatementRow is one persisted transaction. Nullable text columns are
// pointers: nil means the source never provided the field, which is
// stored as SQL NULL and kept distinct from an empty string.
type StatementRow struct {
	ID                          int64
	AccountID                   int64
	Day                         string
	Amount                      decimal.Decimal
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
	IntradayNum                 int
	BalanceAfter                decimal.Decimal
}
