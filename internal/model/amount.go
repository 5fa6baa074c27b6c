package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Amount is an ingredient quantity. On the wire it may arrive as a number,
// a numeric string, a fraction, null, or be missing entirely; every form is
// coerced through ParseAmount.
type Amount float64

// Float returns the amount as a float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*a = Amount(sanitizeAmount(v))
	case string:
		*a = Amount(ParseAmount(v))
	default:
		*a = 0
	}
	return nil
}

var vulgarFractions = map[rune]float64{
	'½': 0.5,
	'⅓': 1.0 / 3,
	'⅔': 2.0 / 3,
	'¼': 0.25,
	'¾': 0.75,
	'⅕': 0.2,
	'⅖': 0.4,
	'⅗': 0.6,
	'⅘': 0.8,
	'⅙': 1.0 / 6,
	'⅚': 5.0 / 6,
	'⅛': 0.125,
	'⅜': 0.375,
	'⅝': 0.625,
	'⅞': 0.875,
}

// ParseAmount converts a raw quantity string into a non-negative number.
// It understands decimals ("1.5"), fractions ("1/2"), mixed numbers
// ("1 1/2"), unicode vulgar fractions ("½", "1½") and a leading quantity
// followed by words ("2 cups"). Anything else, including negative, NaN and
// infinite values, yields 0.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, ok := parseQuantity(s)
	if !ok {
		return 0
	}
	return sanitizeAmount(v)
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func parseQuantity(s string) (float64, bool) {
	if v, ok := parseWithVulgar(s); ok {
		return v, true
	}

	fields := strings.Fields(s)
	if len(fields) >= 2 {
		whole, wok := parseNumber(fields[0])
		frac, fok := parseFraction(fields[1])
		if wok && fok && !strings.Contains(fields[0], "/") {
			return whole + frac, true
		}
	}
	if v, ok := parseWithVulgar(fields[0]); ok {
		return v, true
	}
	return parseNumber(fields[0])
}

// parseWithVulgar handles a token that ends in a unicode fraction, with an
// optional whole-number prefix.
func parseWithVulgar(s string) (float64, bool) {
	last, size := utf8.DecodeLastRuneInString(s)
	frac, ok := vulgarFractions[last]
	if !ok {
		return 0, false
	}
	rest := strings.TrimSpace(s[:len(s)-size])
	if rest == "" {
		return frac, true
	}
	whole, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false
	}
	return whole + frac, true
}

func parseNumber(s string) (float64, bool) {
	if strings.Contains(s, "/") {
		return parseFraction(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFraction(s string) (float64, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}
