package pdf_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gstpro/internal/pdf"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "Zero"},
		{"1", "One"},
		{"19", "Nineteen"},
		{"20", "Twenty"},
		{"34", "Thirty Four"},
		{"100", "One Hundred"},
		{"234", "Two Hundred and Thirty Four"},
		{"1000", "One Thousand"},
		{"1234", "One Thousand Two Hundred and Thirty Four"},
		{"100000", "One Lakh"},
		{"2500000", "Twenty Five Lakh"},
		{"10000000", "One Crore"},
		{"12345678", "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight"},
		{"1234.50", "One Thousand Two Hundred and Thirty Four and Fifty Paise"},
		{"0.99", "Zero and Ninety Nine Paise"},
		{"100.05", "One Hundred and Five Paise"},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			got := pdf.AmountInWords(decimal.RequireFromString(tc.amount))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAmountInWords_RoundsPaise(t *testing.T) {
	// 10.999 rounds to 11.00, not "Ten and One Hundred Paise".
	got := pdf.AmountInWords(decimal.RequireFromString("10.999"))
	assert.Equal(t, "Eleven", got)
}
