package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got := String2ObjectID(oid.Hex())
	if got != oid {
		t.Errorf("chuyển đổi hex hợp lệ không khớp, nhận được %s", got.Hex())
	}

	// Chuỗi không hợp lệ trả về NilObjectID để tầng service xử lý not-found
	khongHopLe := []string{"", "xyz", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"}
	for _, id := range khongHopLe {
		if got := String2ObjectID(id); !got.IsZero() {
			t.Errorf("chuỗi %q phải trả về NilObjectID, nhận được %s", id, got.Hex())
		}
	}
}

func TestToMap_DungBsonTag(t *testing.T) {
	in := struct {
		Name     string `bson:"name"`
		IsActive bool   `bson:"is_active"`
		Skipped  string `bson:"-"`
	}{Name: "Farmacia San Rafael", IsActive: true, Skipped: "bỏ qua"}

	m, err := ToMap(in)
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}
	if m["name"] != "Farmacia San Rafael" {
		t.Errorf("key name không khớp, nhận được %v", m["name"])
	}
	if m["is_active"] != true {
		t.Errorf("key is_active không khớp, nhận được %v", m["is_active"])
	}
	if _, ok := m["Skipped"]; ok {
		t.Error("field bson:\"-\" không được xuất hiện trong map")
	}
}
