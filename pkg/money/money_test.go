package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mazzari/invoicing-api/pkg/money"
)

func TestFormatAUD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{180, "$180.00"},
		{1234.5, "$1,234.50"},
		{306.9, "$306.90"},
		{-30, "-$30.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, money.FormatAUD(decimal.NewFromFloat(c.in)), "input %v", c.in)
	}
}
