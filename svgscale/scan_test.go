package svgscale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		s    string
		want []Token
	}{
		{"", nil},
		{"none", nil},
		{"M10 20 L30.5 -5", []Token{
			{"10", 1, 3}, {"20", 4, 6}, {"30.5", 8, 12}, {"-5", 13, 15},
		}},
		{"1.2.3", []Token{{"1.2", 0, 3}, {"3", 4, 5}}},
		{"--5", []Token{{"-5", 1, 3}}},
		{"5.", []Token{{"5.", 0, 2}}},
		{"10,20", []Token{{"10", 0, 2}, {"20", 3, 5}}},
	}
	for _, tt := range tests {
		got := ScanNumbers(tt.s)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ScanNumbers(%q) (-want +got):\n%s", tt.s, diff)
		}
		for _, tok := range got {
			if tt.s[tok.Start:tok.End] != tok.Text {
				t.Errorf("bad offsets for %v in %q", tok, tt.s)
			}
		}
	}
}

func TestIsNumber(t *testing.T) {
	for s, want := range map[string]bool{
		"10":   true,
		"-3.5": true,
		"5.":   true,
		"0":    true,
		"10px": false,
		" 10":  false,
		"":     false,
		"1e3":  false,
		"100%": false,
		"1 2":  false,
	} {
		if got := IsNumber(s); got != want {
			t.Errorf("IsNumber(%q) = %v", s, got)
		}
	}
}
