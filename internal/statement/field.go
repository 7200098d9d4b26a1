package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kontigo/kontigo/internal/banking"
)

// DateLayout is the calendar-day format used for display and storage.
const DateLayout = "2006-01-02"

// FieldKey enumerates the fields a statement line can carry. The set is
// closed, there is no lookup by name.
type FieldKey int

const (
	FieldDate FieldKey = iota
	FieldAmount
	FieldApplicantName
	FieldApplicantIBAN
	FieldPostingText
	FieldPurpose
	FieldAdditionalPurpose
	FieldAdditionalPositionReference
	FieldApplicantCreditorID
	FieldEndToEndReference
	FieldPrimaNota
	FieldReturnDebitNotes
	FieldTransactionCode
)

// ValueKind tags a storage value.
type ValueKind int

const (
	// KindAbsent marks a field the source never provided. It maps to
	// SQL NULL, never to an empty string.
	KindAbsent ValueKind = iota
	KindText
	KindAmount
	KindDate
)

// Value is the storage-mode result of normalizing one field.
type Value struct {
	Kind   ValueKind
	Text   string
	Amount decimal.Decimal
	Date   time.Time
}

// TextPtr returns the text as a nullable pointer for SQL parameters.
// Absent values become nil.
func (v Value) TextPtr() *string {
	if v.Kind == KindAbsent {
		return nil
	}
	s := v.Text
	return &s
}

// Line wraps a raw source record and owns its normalization. The raw
// record is never mutated.
type Line struct {
	raw *banking.RawLine
}

func Wrap(raw *banking.RawLine) Line {
	return Line{raw: raw}
}

func (l Line) Date() time.Time {
	return l.raw.Date
}

func (l Line) Amount() decimal.Decimal {
	return l.raw.Amount
}

// Has reports whether the source provided the field at all.
func (l Line) Has(key FieldKey) bool {
	return l.Storage(key).Kind != KindAbsent
}

// Storage normalizes a field for persistence: exact decimal for the
// amount, trimmed text for text fields, KindAbsent for fields the
// source never delivered.
func (l Line) Storage(key FieldKey) Value {
	switch key {
	case FieldDate:
		return Value{Kind: KindDate, Date: l.raw.Date}
	case FieldAmount:
		return Value{Kind: KindAmount, Amount: l.raw.Amount}
	case FieldApplicantName:
		return textValue(l.raw.ApplicantName)
	case FieldApplicantIBAN:
		return textValue(l.raw.ApplicantIBAN)
	case FieldPostingText:
		return textValue(l.raw.PostingText)
	case FieldPurpose:
		return textValue(l.raw.Purpose)
	case FieldAdditionalPurpose:
		return textValue(l.raw.AdditionalPurpose)
	case FieldAdditionalPositionReference:
		return textValue(l.raw.AdditionalPositionReference)
	case FieldApplicantCreditorID:
		return textValue(l.raw.ApplicantCreditorID)
	case FieldEndToEndReference:
		return textValue(l.raw.EndToEndReference)
	case FieldPrimaNota:
		return textValue(l.raw.PrimaNota)
	case FieldReturnDebitNotes:
		return textValue(l.raw.ReturnDebitNotes)
	case FieldTransactionCode:
		return textValue(l.raw.TransactionCode)
	}
	// The enum is closed, a new FieldKey without a case here is a bug.
	panic("statement: unknown field key")
}

// Display normalizes a field for human output: dates as YYYY-MM-DD,
// amounts with a currency suffix, absent fields as the empty string.
func (l Line) Display(key FieldKey) string {
	v := l.Storage(key)
	switch v.Kind {
	case KindAbsent:
		return ""
	case KindAmount:
		return v.Amount.StringFixed(2) + " " + l.raw.Currency
	case KindDate:
		return v.Date.Format(DateLayout)
	default:
		return v.Text
	}
}

func textValue(s *string) Value {
	if s == nil {
		return Value{Kind: KindAbsent}
	}
	return Value{Kind: KindText, Text: strings.TrimSpace(*s)}
}
