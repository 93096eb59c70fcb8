// Package basehdl - Helper đọc tham số phân trang từ query string.
package basehdl

import (
	"strconv"
)

// ClampLimit đọc limit từ query string: rỗng/sai định dạng → def, dưới 1 → 1, trên max → max.
// Clamp thay vì từ chối để caller gửi giá trị lệch vẫn nhận được kết quả hợp lý.
func ClampLimit(raw string, def, max int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// ClampSkip đọc skip từ query string: rỗng/sai định dạng/âm → 0.
func ClampSkip(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
