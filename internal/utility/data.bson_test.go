package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// Set phải bọc dữ liệu trong toán tử $set dùng được trực tiếp cho update.
func TestCustomBsonSet_BocTrongToanTuSet(t *testing.T) {
	customBson := &CustomBson{}
	update, err := customBson.Set(bson.M{"is_active": false})
	if err != nil {
		t.Fatalf("Set trả lỗi: %v", err)
	}
	if len(update) != 1 {
		t.Fatalf("update chỉ được chứa $set, có %d khóa", len(update))
	}

	// bson.Unmarshal giải mã document lồng nhau trong interface{} thành bson.D
	set, ok := update["$set"].(bson.D)
	if !ok {
		t.Fatalf("giá trị $set phải là bson.D, có %T", update["$set"])
	}
	if len(set) != 1 || set[0].Key != "is_active" || set[0].Value != false {
		t.Errorf("$set phải chứa đúng is_active=false, có %v", set)
	}
}
