// Package registry - Test các thao tác cơ bản của generic registry.
package registry

import (
	"errors"
	"fmt"
	"testing"

	"asteria_local/internal/common"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("businesses", "collection-businesses")
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("item đăng ký lần đầu phải là item mới")
	}

	item, exists := r.Get("businesses")
	if !exists {
		t.Fatal("item vừa đăng ký phải tồn tại")
	}
	if item != "collection-businesses" {
		t.Errorf("item không khớp, nhận được %q", item)
	}
}

func TestRegistry_RegisterGhiDe(t *testing.T) {
	r := NewRegistry[int]()

	if _, err := r.Register("limit", 10); err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	isNew, err := r.Register("limit", 20)
	if err != nil {
		t.Fatalf("Register lần hai lỗi: %v", err)
	}
	if isNew {
		t.Error("đăng ký trùng tên phải trả về isNew=false")
	}

	item, _ := r.Get("limit")
	if item != 20 {
		t.Errorf("item phải bị ghi đè thành 20, nhận được %d", item)
	}
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "x")
	if err == nil {
		t.Fatal("đăng ký tên rỗng phải trả về lỗi")
	}
	if !errors.Is(err, common.ErrRequiredField) {
		t.Errorf("lỗi phải wrap ErrRequiredField, nhận được %v", err)
	}
}

func TestRegistry_GetKhongTonTai(t *testing.T) {
	r := NewRegistry[string]()

	item, exists := r.Get("categories")
	if exists {
		t.Error("item chưa đăng ký không được tồn tại")
	}
	if item != "" {
		t.Errorf("item không tồn tại phải là zero value, nhận được %q", item)
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 7, nil
	}

	item, err := r.GetOrCreate("reviews", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lỗi: %v", err)
	}
	if item != 7 {
		t.Errorf("item tạo mới phải là 7, nhận được %d", item)
	}

	// Lần hai phải trả về item đã có, không gọi lại creator
	if _, err := r.GetOrCreate("reviews", creator); err != nil {
		t.Fatalf("GetOrCreate lần hai lỗi: %v", err)
	}
	if calls != 1 {
		t.Errorf("creator chỉ được gọi một lần, đã gọi %d lần", calls)
	}
}

func TestRegistry_GetOrCreateLoiKhoiTao(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.GetOrCreate("stats", func() (int, error) {
		return 0, fmt.Errorf("không kết nối được")
	})
	if err == nil {
		t.Fatal("creator lỗi thì GetOrCreate phải trả về lỗi")
	}
	if _, exists := r.Get("stats"); exists {
		t.Error("item không được lưu khi creator lỗi")
	}
}

func TestRegistry_Update(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("count", 1)

	err := r.Update("count", func(cur int) (int, error) {
		return cur + 1, nil
	})
	if err != nil {
		t.Fatalf("Update lỗi: %v", err)
	}
	item, _ := r.Get("count")
	if item != 2 {
		t.Errorf("item sau update phải là 2, nhận được %d", item)
	}

	err = r.Update("khong-ton-tai", func(cur int) (int, error) { return cur, nil })
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("update item không tồn tại phải trả về ErrNotFound, nhận được %v", err)
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("businesses", "coll")

	cleaned := false
	deleted, err := r.Clear("businesses", func(item string) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if !deleted {
		t.Error("Clear item tồn tại phải trả về deleted=true")
	}
	if !cleaned {
		t.Error("cleanup phải được gọi trước khi xóa")
	}
	if _, exists := r.Get("businesses"); exists {
		t.Error("item sau Clear không được tồn tại")
	}

	// Clear item không tồn tại: không lỗi, deleted=false
	deleted, err = r.Clear("businesses", nil)
	if err != nil {
		t.Fatalf("Clear lần hai lỗi: %v", err)
	}
	if deleted {
		t.Error("Clear item không tồn tại phải trả về deleted=false")
	}
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("a", "1")
	_, _ = r.Register("b", "2")

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll lỗi: %v", err)
	}
	if count != 2 {
		t.Errorf("ClearAll phải trả về số item đã xóa là 2, nhận được %d", count)
	}
	if _, exists := r.Get("a"); exists {
		t.Error("registry sau ClearAll phải rỗng")
	}
}
