package core

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half away from zero
		{" 2500.00 ", 250000, true},
		{"1e3", 100000, true},
		{"-5", -500, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"1,23", 0, false},
		{"", 0, false},
		{"999999999999", 99999999999900, true},
		{"1e11", 10000000000000, true},
		{"1e12", 0, false},
		{"0.000000000000000001", 0, true},
		{"1e-19", 0, false},
		{"1e20000000", 0, false},
		{"1e-20000000", 0, false},
		{strings.Repeat("9", 40), 0, false},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if tc.ok {
			if err != nil || got.Cents() != tc.cents {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.cents, got.Cents(), err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestParseMoney_HugeExponentsAreCheap(t *testing.T) {
	start := time.Now()
	for _, in := range []string{"1e20000000", "1e-20000000", "9e2147483647", "1E-2147483648"} {
		if _, err := ParseMoney(in); err != ErrInvalidAmount {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", in, err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("rejecting huge exponents took %v", elapsed)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := MoneyFromCents(250000)
	b := MoneyFromCents(252500)
	if got := a.Add(b).Cents(); got != 502500 {
		t.Fatalf("add: got %d", got)
	}
	if got := a.Add(b).Sub(MoneyFromCents(1500000)).String(); got != "-9975.00" {
		t.Fatalf("sub: got %s", got)
	}
	if !a.IsPositive() || (Money{}).IsPositive() {
		t.Fatalf("IsPositive mismatch")
	}
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Fatalf("Cmp mismatch")
	}
}

func TestMoneyJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Amount Money `json:"amount"`
	}{Amount: MoneyFromCents(1234)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"amount":12.34}` {
		t.Fatalf("unexpected json %s", out)
	}

	for _, in := range []string{`{"amount":12.339}`, `{"amount":"12.34"}`} {
		var v struct {
			Amount Money `json:"amount"`
		}
		if err := json.Unmarshal([]byte(in), &v); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if v.Amount.Cents() != 1234 {
			t.Fatalf("%s: got %d cents", in, v.Amount.Cents())
		}
	}
}
