package convert

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOre(t *testing.T) {
	if s := Ore(45).String(); s != "0.45" {
		t.Errorf("Ore(45) expected 0.45, got %s", s)
	}
	if s := Ore(12).String(); s != "0.12" {
		t.Errorf("Ore(12) expected 0.12, got %s", s)
	}
	if s := Ore(170).String(); s != "1.7" {
		t.Errorf("Ore(170) expected 1.7, got %s", s)
	}
}

func TestPerMWhToPerKWh(t *testing.T) {
	perMWh := decimal.RequireFromString("831.47")
	expected := decimal.RequireFromString("0.83147")
	if got := PerMWhToPerKWh(perMWh); !got.Equal(expected) {
		t.Errorf("PerMWhToPerKWh(831.47) expected %s, got %s", expected, got)
	}
}

func TestParseDecimalComma(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain", input: "83,01", expected: "83.01"},
		{name: "thousand separator", input: "1 234,56", expected: "1234.56"},
		{name: "negative", input: "-12,30", expected: "-12.3"},
		{name: "no fraction", input: "100", expected: "100"},
		{name: "surrounding whitespace", input: " 42,5 ", expected: "42.5"},
		{name: "placeholder dash", input: "-", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimalComma(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDecimalComma(%q) expected error, got %s", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimalComma(%q) unexpected error: %v", tt.input, err)
			}
			if expected := decimal.RequireFromString(tt.expected); !got.Equal(expected) {
				t.Errorf("ParseDecimalComma(%q) expected %s, got %s", tt.input, expected, got)
			}
		})
	}
}
