package utils

import (
	"testing"

	"github.com/reservelabs/datwatch/pkg/models"
)

func TestFormatCurrencyCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3500000000, "$3.50B"},
		{42000000000, "$42.00B"},
		{12400000, "$12.4M"},
		{1000000, "$1.0M"},
		{9500, "$10K"},
		{1000, "$1K"},
		{999, "$999"},
		{0, "$0"},
		{-2500000, "-$2.5M"},
		{-1200000000, "-$1.20B"},
	}
	for _, tc := range cases {
		if got := FormatCurrencyCompact(tc.in); got != tc.want {
			t.Errorf("FormatCurrencyCompact(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTokenAmount(t *testing.T) {
	cases := []struct {
		in    float64
		asset models.Asset
		want  string
	}{
		{4110000, models.AssetETH, "4.11M ETH"},
		{838000, models.AssetETH, "838.00K ETH"},
		{1500, models.AssetSOL, "1.50K SOL"},
		{0.5, models.AssetBTC, "0.5000 BTC"},
		{-2500, models.AssetETH, "-2.50K ETH"},
	}
	for _, tc := range cases {
		if got := FormatTokenAmount(tc.in, tc.asset); got != tc.want {
			t.Errorf("FormatTokenAmount(%v, %s) = %q, want %q", tc.in, tc.asset, got, tc.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	if got := FormatPercentage(-0.142857, 2); got != "-14.29%" {
		t.Errorf("got %q", got)
	}
	if got := FormatPercentage(0.035, 1); got != "3.5%" {
		t.Errorf("got %q", got)
	}
	if got := FormatSignedPercentage(0.0301, 1); got != "+3.0%" {
		t.Errorf("got %q", got)
	}
	if got := FormatSignedPercentage(-0.12, 1); got != "-12.0%" {
		t.Errorf("got %q", got)
	}
}

func TestFormatCurrencyGrouping(t *testing.T) {
	cases := []struct {
		in       float64
		decimals int
		want     string
	}{
		{3500000000, 0, "$3,500,000,000"},
		{1234.5, 2, "$1,234.50"},
		{70, 2, "$70.00"},
		{-9876543.21, 2, "-$9,876,543.21"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in, tc.decimals); got != tc.want {
			t.Errorf("FormatCurrency(%v, %d) = %q, want %q", tc.in, tc.decimals, got, tc.want)
		}
	}
}

func TestFormatOpt(t *testing.T) {
	if got := FormatOptPercentage(models.Unknown(), 2); got != NAString {
		t.Errorf("unknown should render %q, got %q", NAString, got)
	}
	if got := FormatOptPercentage(models.Known(0), 2); got != "0.00%" {
		t.Errorf("known zero must not render as N/A, got %q", got)
	}
}

func TestFormatYieldMultiple(t *testing.T) {
	inf := models.ProductivityRecord{InfiniteMultiple: true}
	if got := FormatYieldMultiple(inf); got != "∞x" {
		t.Errorf("got %q", got)
	}
	rec := models.ProductivityRecord{YieldMultiple: models.Known(1.75)}
	if got := FormatYieldMultiple(rec); got != "1.8x" {
		t.Errorf("got %q", got)
	}
	if got := FormatYieldMultiple(models.ProductivityRecord{}); got != NAString {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 50); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("a long headline about treasuries", 10); got != "a long ..." {
		t.Errorf("got %q", got)
	}
}
