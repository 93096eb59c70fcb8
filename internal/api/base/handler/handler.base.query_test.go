// Package basehdl - Test clamp tham số phân trang.
package basehdl

import (
	"testing"
)

func TestClampLimit(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		def  int
		max  int
		want int
	}{
		{"rỗng dùng mặc định", "", 20, 100, 20},
		{"sai định dạng dùng mặc định", "abc", 20, 100, 20},
		{"trong khoảng giữ nguyên", "50", 20, 100, 50},
		{"dưới 1 kéo lên 1", "0", 20, 100, 1},
		{"âm kéo lên 1", "-5", 20, 100, 1},
		{"vượt max kéo xuống max", "500", 20, 100, 100},
		{"đúng biên max", "100", 20, 100, 100},
		{"featured max 50", "80", 10, 50, 50},
	}
	for _, c := range cases {
		if got := ClampLimit(c.raw, c.def, c.max); got != c.want {
			t.Errorf("%s: ClampLimit(%q, %d, %d) = %d, muốn %d", c.name, c.raw, c.def, c.max, got, c.want)
		}
	}
}

func TestClampSkip(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"-1", 0},
		{"0", 0},
		{"25", 25},
	}
	for _, c := range cases {
		if got := ClampSkip(c.raw); got != c.want {
			t.Errorf("ClampSkip(%q) = %d, muốn %d", c.raw, got, c.want)
		}
	}
}
