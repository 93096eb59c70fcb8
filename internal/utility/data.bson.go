package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ****************************************************  Bson *******************************************
// Các thao tác Bson tùy chỉnh

// CustomBson dùng để dựng các bản đồ update bson từ struct hoặc map
// mà không phải viết tay toán tử $set trong từng service
type CustomBson struct{}

// BsonWrapper bọc dữ liệu trong toán tử update của mongo.
// Mã hóa thành bson sẽ ra dạng { $set : {name : "Jack"}} dùng được trực tiếp trong truy vấn update
type BsonWrapper struct {
	// Set sẽ đặt giá trị các trường trong db
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`
}

// ToMap chuyển đổi interface thành bản đồ.
// Nó nhận interface làm tham số và trả về bản đồ và lỗi nếu có
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, err
}

// Set tạo truy vấn để thay thế giá trị của một trường bằng giá trị cụ thể
// @params - dữ liệu cần đặt
// @returns - bản đồ truy vấn và lỗi nếu có
func (customBson *CustomBson) Set(data interface{}) (map[string]interface{}, error) {
	s := BsonWrapper{Set: data}
	return ToMap(s)
}

// ****************************************************  Bson End  *******************************************
