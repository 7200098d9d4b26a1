package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPurpose(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"two or more spaces split", "ABC  DEF", []string{"ABC", "DEF"}},
		{"single space stays together", "ABC DEF", []string{"ABC DEF"}},
		{"many spaces still one split", "ABC     DEF", []string{"ABC", "DEF"}},
		{"multiple segments", "SVWZ+  Rent 2024-01  EREF+X1", []string{"SVWZ+", "Rent 2024-01", "EREF+X1"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPurpose(tt.in))
		})
	}
}

func TestPurposeSegments_IncludesAdditionalPurpose(t *testing.T) {
	raw := line(date(2024, 1, 5), "-20.00")
	raw.Purpose = strptr("Rent January")
	raw.AdditionalPurpose = strptr("  Unit 4B")
	l := Wrap(&raw)

	assert.Equal(t, []string{"Rent JanuaryUnit 4B"}, l.PurposeSegments())
}

func TestPurposeSegments_AbsentAdditionalPurpose(t *testing.T) {
	raw := line(date(2024, 1, 5), "-20.00")
	raw.Purpose = strptr("Rent January  Unit 4B")
	l := Wrap(&raw)

	assert.Equal(t, []string{"Rent January", "Unit 4B"}, l.PurposeSegments())
}
