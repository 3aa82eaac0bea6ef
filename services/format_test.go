package services

import (
	"math"
	"testing"
)

func TestFormatCAD_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "$0"},
		{"small integer", 5, "$5"},
		{"rounds down", 999.49, "$999"},
		{"half rounds up", 999.5, "$1,000"},
		{"thousands", 1234, "$1,234"},
		{"estimate low", 46710, "$46,710"},
		{"hundred thousands", 121780, "$121,780"},
		{"millions", 1234567.89, "$1,234,568"},
		{"negative", -2500, "-$2,500"},
		{"beyond int64", 1e20, "$100,000,000,000,000,000,000"},
		{"NaN", math.NaN(), "$0"},
		{"Inf", math.Inf(1), "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCAD(tt.input)
			if got != tt.expect {
				t.Errorf("FormatCAD(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"5", "5"},
		{"999", "999"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"123456789", "123,456,789"},
		{"99999999999999999999", "99,999,999,999,999,999,999"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := groupThousands(tt.input); got != tt.expect {
				t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatCurrencyRange(t *testing.T) {
	if got := FormatCurrencyRange(63000, 77000); got != "$63,000–$77,000" {
		t.Errorf("FormatCurrencyRange = %q", got)
	}
	if got := FormatCurrencyRange(0, 0); got != ZeroRange {
		t.Errorf("zero range = %q, want %q", got, ZeroRange)
	}
}

func TestFormatArea(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{500, "500"},
		{612.5, "612.5"},
		{0.25, "0.25"},
		{0, "0"},
		{-10, "0"},
		{math.NaN(), "0"},
		{math.Inf(1), "0"},
	}

	for _, tt := range tests {
		if got := FormatArea(tt.input); got != tt.expect {
			t.Errorf("FormatArea(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
