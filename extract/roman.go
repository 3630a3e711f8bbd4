package extract

import (
	"fmt"
	"strings"
)

// Roman numeral conversion in standard subtractive notation.

var romanDigits = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// FromRoman converts a Roman numeral token to an integer. The token is
// processed right to left: a digit smaller than its right neighbor is
// subtracted, any other digit is added.
func FromRoman(token string) (int, error) {
	if len(token) == 0 {
		return 0, extractionErrorf("empty Roman numeral")
	}
	token = strings.ToUpper(token)

	result, prev := 0, 0
	for i := len(token) - 1; i >= 0; i-- {
		value, ok := romanDigits[token[i]]
		if !ok {
			return 0, extractionErrorf("invalid Roman numeral character %q in %q", token[i], token)
		}
		if value >= prev {
			result += value
		} else {
			result -= value
		}
		prev = value
	}
	return result, nil
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman renders n as a Roman numeral. Valid for 1 through 3999.
func ToRoman(n int) (string, error) {
	if n <= 0 || n > 3999 {
		return "", fmt.Errorf("%d is out of Roman numeral range", n)
	}
	var b strings.Builder
	for _, d := range romanTable {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}
	return b.String(), nil
}
