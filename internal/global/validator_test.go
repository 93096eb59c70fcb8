// Package global - Test các custom validator đăng ký qua InitValidator.
package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlug(t *testing.T) {
	InitValidator()

	hopLe := []string{
		"restaurantes",
		"salones-de-belleza",
		"ciudad-madero",
		"cafes",
		"top-10",
	}
	for _, slug := range hopLe {
		assert.NoError(t, Validate.Var(slug, "slug"), "slug hợp lệ: %q", slug)
	}

	khongHopLe := []string{
		"Café",
		"RESTAURANTES",
		"-dau-gach",
		"cuoi-gach-",
		"hai--gach",
		"có dấu cách",
		"ký_tự_gạch_dưới",
	}
	for _, slug := range khongHopLe {
		assert.Error(t, Validate.Var(slug, "slug"), "slug không hợp lệ: %q", slug)
	}

	// Slug rỗng chỉ bị chặn khi đi kèm required
	assert.NoError(t, Validate.Var("", "slug"))
	assert.Error(t, Validate.Var("", "required,slug"))
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Var("Restaurante El Huasteco", "no_xss"))
	assert.NoError(t, Validate.Var("Tacos & tortas, precio $$", "no_xss"))

	nguyHiem := []string{
		"<script>alert(1)</script>",
		"<SCRIPT>alert(1)</SCRIPT>",
		"javascript:alert(1)",
		`<img src=x onerror=alert(1)>`,
		"<iframe src='http://x'>",
		"eval(document.cookie)",
	}
	for _, value := range nguyHiem {
		assert.Error(t, Validate.Var(value, "no_xss"), "phải chặn giá trị: %q", value)
	}
}

func TestValidateExists_IdKhongHopLe(t *testing.T) {
	InitValidator()

	// Chuỗi không phải ObjectID hex bị từ chối trước khi truy vấn database
	assert.Error(t, Validate.Var("khong-phai-object-id", "exists=businesses"))

	// Giá trị rỗng bỏ qua validation (dùng kèm required nếu bắt buộc)
	assert.NoError(t, Validate.Var("", "exists=businesses"))
}
