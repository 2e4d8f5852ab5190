package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		s        string
		bad, def int
		want     int
	}{
		// empty -> default
		{"", -1, 10, 10},
		// valid ints
		{"42", -1, 0, 42},
		{"-13", -1, 1, -13},
		{"0012", -1, 99, 12},
		// malformed -> bad (no trim)
		{"x", -1, 5, -1},
		{" 42", -2, 7, -2},
		// overflow -> bad
		{"999999999999999999999999", -3, 0, -3},
	}

	for _, tc := range cases {
		if got := AtoiDefault(tc.s, tc.bad, tc.def); got != tc.want {
			t.Fatalf("AtoiDefault(%q, %d, %d) = %d; want %d", tc.s, tc.bad, tc.def, got, tc.want)
		}
	}
}
