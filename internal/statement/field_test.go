package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string {
	return &s
}

func TestDisplay_AmountCarriesCurrency(t *testing.T) {
	raw := line(date(2024, 1, 5), "-20.00")
	l := Wrap(&raw)

	assert.Equal(t, "-20.00 EUR", l.Display(FieldAmount))
	assert.Equal(t, "2024-01-05", l.Display(FieldDate))
}

func TestDisplay_TrimsText(t *testing.T) {
	raw := line(date(2024, 1, 5), "-20.00")
	raw.ApplicantName = strptr("  ACME GMBH ")
	l := Wrap(&raw)

	assert.Equal(t, "ACME GMBH", l.Display(FieldApplicantName))
}

func TestAbsentField_EmptyDisplayButNotEmptyStorage(t *testing.T) {
	raw := line(date(2024, 1, 5), "-20.00")
	l := Wrap(&raw)

	assert.Equal(t, "", l.Display(FieldPostingText))
	assert.False(t, l.Has(FieldPostingText))

	v := l.Storage(FieldPostingText)
	assert.Equal(t, KindAbsent, v.Kind)
	assert.Nil(t, v.TextPtr(), "absent must map to NULL, not empty string")
}

func TestProvidedEmptyField_IsNotAbsent(t *testing.T) {
	raw := line(date(2024, 1, 5), "-20.00")
	raw.PostingText = strptr("")
	l := Wrap(&raw)

	v := l.Storage(FieldPostingText)
	assert.Equal(t, KindText, v.Kind)
	if assert.NotNil(t, v.TextPtr()) {
		assert.Equal(t, "", *v.TextPtr())
	}
	assert.True(t, l.Has(FieldPostingText))
}

func TestStorage_AmountIsExactDecimal(t *testing.T) {
	raw := line(date(2024, 1, 5), "-3.50")
	l := Wrap(&raw)

	v := l.Storage(FieldAmount)
	assert.Equal(t, KindAmount, v.Kind)
	assert.True(t, dec("-3.50").Equal(v.Amount))
}
