package billing

import "testing"

func TestWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{1, "One Only"},
		{9, "Nine Only"},
		{10, "Ten Only"},
		{15, "Fifteen Only"},
		{19, "Nineteen Only"},
		{20, "Twenty Only"},
		{21, "Twenty One Only"},
		{99, "Ninety Nine Only"},
		{100, "One Hundred Only"},
		{101, "One Hundred One Only"},
		{110, "One Hundred Ten Only"},
		{999, "Nine Hundred Ninety Nine Only"},
		{1000, "One Thousand Only"},
		{1001, "One Thousand One Only"},
		{10000, "Ten Thousand Only"},
		{12011, "Twelve Thousand Eleven Only"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
		{100000, "One Lakh Only"},
		{100100, "One Lakh One Hundred Only"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six Only"},
		{1500000, "Fifteen Lakh Only"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
		{10000000, "One Crore Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{1000000000, "One Hundred Crore Only"},
		{123400000000, "Twelve Thousand Three Hundred Forty Crore Only"},
	}
	for _, tt := range tests {
		if got := Words(tt.n); got != tt.want {
			t.Errorf("Words(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWords_Negative(t *testing.T) {
	if got := Words(-5); got != "" {
		t.Errorf("Words(-5) = %q, want empty", got)
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{235.49, "Two Hundred Thirty Five Only"},
		{235.5, "Two Hundred Thirty Six Only"},
		{0.4, "Zero"},
		{99999.5, "One Lakh Only"},
	}
	for _, tt := range tests {
		if got := AmountInWords(tt.amount); got != tt.want {
			t.Errorf("AmountInWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
