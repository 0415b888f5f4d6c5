package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders a monetary amount on the Indian numbering scale
// (Hundred, Thousand, Lakh, Crore). The fractional part becomes
// "and N Paise"; a zero amount is "Zero".
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	words := integerWords(rupees)
	if paise > 0 {
		words += " and " + belowHundred(paise) + " Paise"
	}
	return words
}

func integerWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	var parts []string
	scale := func(v int64, name string) {
		if v > 0 {
			parts = append(parts, integerWords(v)+" "+name)
		}
	}
	scale(n/10000000, "Crore")
	n %= 10000000
	scale(n/100000, "Lakh")
	n %= 100000
	scale(n/1000, "Thousand")
	n %= 1000
	if h := n / 100; h > 0 {
		parts = append(parts, onesWords[h]+" Hundred")
	}
	n %= 100
	if n > 0 {
		w := belowHundred(n)
		if len(parts) > 0 {
			w = "and " + w
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + " " + onesWords[n%10]
}
