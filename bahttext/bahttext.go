/*
Package bahttext renders monetary amounts as Thai baht text.

PURPOSE:
  Disbursement documents carry the grand total spelled out in words,
  e.g. 120.50 -> "หนึ่งร้อยยี่สิบบาทห้าสิบสตางค์". This is a stateless
  pure function, independent of the OT engine.

READING RULES:
  - Exactly zero reads "ศูนย์บาทถ้วน"
  - A whole amount ends in "ถ้วน"; a fractional amount ends in a
    "...สตางค์" clause instead
  - A trailing 1 in a multi-digit group reads "เอ็ด", not "หนึ่ง"
  - 2 in the tens position reads "ยี่" (ยี่สิบ)
  - 1 in the tens position reads bare "สิบ"
  - Amounts of ten million and above recurse on "ล้าน" groups
*/
package bahttext

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var digitWords = [10]string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}

var unitWords = [6]string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน"}

const (
	wordZero    = "ศูนย์"
	wordBaht    = "บาท"
	wordSatang  = "สตางค์"
	wordEven    = "ถ้วน"
	wordMillion = "ล้าน"
)

// Words returns the Thai reading of a non-negative amount, rounded to
// two decimal places.
func Words(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.IsZero() {
		return wordZero + wordBaht + wordEven
	}

	baht := rounded.IntPart()
	satang := rounded.Sub(decimal.NewFromInt(baht)).Mul(decimal.NewFromInt(100)).IntPart()

	bahtText := readNumber(baht)
	if bahtText == "" {
		bahtText = wordZero
	}

	if satang > 0 {
		return bahtText + wordBaht + readNumber(satang) + wordSatang
	}
	return bahtText + wordBaht + wordEven
}

// WordsFloat is a convenience wrapper for callers holding a float.
func WordsFloat(amount float64) string {
	return Words(decimal.NewFromFloat(amount))
}

// readNumber reads a non-negative integer, recursing on ล้าน groups of
// six digits so arbitrarily large totals stay correct.
func readNumber(n int64) string {
	if n >= 1_000_000 {
		return readNumber(n/1_000_000) + wordMillion + readGroup(n%1_000_000, true)
	}
	return readGroup(n, false)
}

// readGroup reads n < 1,000,000. trailing marks a group that follows a
// ล้าน prefix, where a bare 1 elides to เอ็ด as well.
func readGroup(n int64, trailing bool) string {
	if n == 0 {
		return ""
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		pos := len(digits) - i - 1
		if d == 0 {
			continue
		}
		switch {
		case pos == 0 && d == 1 && (len(digits) > 1 || trailing):
			b.WriteString("เอ็ด")
		case pos == 1 && d == 2:
			b.WriteString("ยี่" + unitWords[1])
		case pos == 1 && d == 1:
			b.WriteString(unitWords[1])
		default:
			b.WriteString(digitWords[d])
			b.WriteString(unitWords[pos])
		}
	}
	return b.String()
}
