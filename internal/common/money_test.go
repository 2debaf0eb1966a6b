package common

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := map[int64]string{
		0:      "$0.00",
		298:    "$2.98",
		13696:  "$136.96",
		-500:   "-$5.00",
		700000: "$7000.00",
	}
	for cents, want := range cases {
		if got := FormatMoney(cents); got != want {
			t.Fatalf("FormatMoney(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestParseMoney(t *testing.T) {
	cases := map[string]int64{
		"34":      3400,
		"34.5":    3450,
		"$34.50":  3450,
		" 2.98 ":  298,
		"-5":      -500,
		"0":       0,
	}
	for input, want := range cases {
		got, err := ParseMoney(input)
		if err != nil {
			t.Fatalf("ParseMoney(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseMoney(%q) = %d, want %d", input, got, want)
		}
	}
	for _, bad := range []string{"", "abc", "1.234", "$"} {
		if _, err := ParseMoney(bad); err == nil {
			t.Fatalf("ParseMoney(%q) expected error", bad)
		}
	}
}

func TestMoneyOrDefault(t *testing.T) {
	if got := MoneyOrDefault("", 100); got != 100 {
		t.Fatalf("blank input: got %d", got)
	}
	if got := MoneyOrDefault("junk", 100); got != 100 {
		t.Fatalf("malformed input: got %d", got)
	}
	if got := MoneyOrDefault("1.25", 100); got != 125 {
		t.Fatalf("valid input: got %d", got)
	}
}
