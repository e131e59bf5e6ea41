// Package core provides money parsing and handling utilities.
//
// This file contains the Money type used for donation and expense amounts.
// Amounts carry two decimal places with a NUMERIC(10,2) range and are
// persisted as integer minor units.
package core

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxCents is the largest amount a NUMERIC(10,2) column can hold.
const MaxCents int64 = 99_999_999_99

// MaxAmountLength bounds the text ParseMoney accepts.
const MaxAmountLength = 32

// Parsed amounts outside this window are rejected before rounding, since
// rescaling a decimal allocates an integer of 10^|exponent|.
const (
	minExponent      = -18
	maxIntegerDigits = 12
)

var hundred = decimal.NewFromInt(100)

// Money is a decimal amount rounded to two places.
// The zero value is a valid amount of 0.00.
type Money struct {
	d decimal.Decimal
}

// NewMoney rounds d half away from zero to two decimal places.
func NewMoney(d decimal.Decimal) Money {
	return Money{d: d.Round(2)}
}

// MoneyFromCents builds an amount from minor units (paise, cents).
func MoneyFromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -2)}
}

// ParseMoney parses a decimal string such as "2500", "12.345" or "1e3".
//
// The result is rounded to two places. Sign is preserved: positivity is a
// validation concern of the caller, not of parsing.
//
// Examples:
//
//	ParseMoney("12.34")  -> 12.34, nil
//	ParseMoney("12.345") -> 12.35, nil (half away from zero)
//	ParseMoney("abc")    -> 0, ErrInvalidAmount
//	ParseMoney("1e20")   -> 0, ErrInvalidAmount (more than 12 integer digits)
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxAmountLength {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.Exponent() < minExponent || d.NumDigits()+int(d.Exponent()) > maxIntegerDigits {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d), nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.d.Mul(hundred).IntPart()
}

// Decimal exposes the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }
func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.d.IsPositive() }

func (m Money) IsZero() bool { return m.d.IsZero() }

// Cmp compares two amounts, returning -1, 0 or +1.
func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

// Float64 returns the amount as a float for presentation math (percentages,
// chart scaling). Use Cents or Decimal for arithmetic.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// String formats the amount with exactly two decimals.
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.StringFixed(2)), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseMoney(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	parsed, err := ParseMoney(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
