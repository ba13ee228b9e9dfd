package slp

import "testing"

func TestVersionAtLeast(t *testing.T) {
	cases := []struct {
		v    Version
		m    [3]uint8
		want bool
	}{
		{Version{3, 16, 0}, [3]uint8{3, 16, 0}, true},
		{Version{3, 16, 0}, [3]uint8{3, 15, 0}, true},
		{Version{3, 15, 0}, [3]uint8{3, 16, 0}, false},
		{Version{2, 0, 0}, [3]uint8{1, 99, 99}, true},
		{Version{1, 99, 99}, [3]uint8{2, 0, 0}, false},
		{Version{0, 1, 0}, [3]uint8{0, 1, 0}, true},
		{Version{0, 1, 0}, [3]uint8{0, 2, 0}, false},
		{Version{1, 2, 3}, [3]uint8{1, 2, 4}, false},
		{Version{1, 2, 4}, [3]uint8{1, 2, 3}, true},
	}
	for _, tc := range cases {
		got := tc.v.AtLeast(tc.m[0], tc.m[1], tc.m[2])
		if got != tc.want {
			t.Fatalf("%v.AtLeast(%d,%d,%d) = %v, want %v", tc.v, tc.m[0], tc.m[1], tc.m[2], got, tc.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	if got := (Version{3, 16, 0}).String(); got != "v3.16.0" {
		t.Fatalf("got %q", got)
	}
}
