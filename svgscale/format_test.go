package svgscale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{40, "40"},
		{20.0 * 2, "40"},
		{30.5 * 2, "61"},
		{-10, "-10"},
		{math.Copysign(0, -1), "0"},
		{0.5, "0.5"},
		{0.1 * 3, "0.30000000000000004"},
		{-2.25, "-2.25"},
		{1e20, "100000000000000000000"},
		{1.5e-5, "1.5e-05"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatRepr(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{150, "150.0"},
		{75, "75.0"},
		{0, "0.0"},
		{-2, "-2.0"},
		{123.45, "123.45"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
		{9999999999999998, "9999999999999998.0"},
	}
	for _, tt := range tests {
		if got := FormatRepr(tt.v); got != tt.want {
			t.Errorf("FormatRepr(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	in := []float64{150, 99.999, 0.333, 2.675, 1.005, 0.125, -3.14159}
	want := []float64{150, 100, 0.33, 2.67, 1, 0.12, -3.14}
	got := make([]float64, len(in))
	for i, v := range in {
		got[i] = round2(v)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round2 (-want +got):\n%s", diff)
	}
	if !math.IsInf(round2(math.Inf(1)), 1) {
		t.Error("expected +Inf to be kept")
	}
}
