// Package basesvc - Test ToUpdateData và default từ struct tag.
package basesvc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_MapThuongWrapTrongSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{"is_active": false, "name": "Tên mới"})
	require.NoError(t, err)
	require.NotNil(t, update.Set)
	assert.Equal(t, false, update.Set["is_active"])
	assert.Equal(t, "Tên mới", update.Set["name"])
	assert.Nil(t, update.Unset)
}

func TestToUpdateData_MapCoSanOperator(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$set":   bson.M{"rating_average": 4.7},
		"$unset": bson.M{"featured_position": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 4.7, update.Set["rating_average"])
	assert.Contains(t, update.Unset, "featured_position")
}

func TestToUpdateData_UpdateDataTruyenThang(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"name": "A"}}
	update, err := ToUpdateData(in)
	require.NoError(t, err)
	assert.Same(t, in, update)
}

type defaultTagModel struct {
	Name       string `bson:"name"`
	PriceRange string `bson:"price_range" default:"$$"`
	IsActive   bool   `bson:"is_active" default:"true"`
	Retries    int64  `bson:"retries" default:"3"`
	Skipped    string `bson:"-" default:"bỏ qua"`
}

func TestApplyInsertDefaults_ChiSetFieldDangZero(t *testing.T) {
	m := defaultTagModel{Name: "Giữ nguyên", PriceRange: "$$$"}
	applyInsertDefaultsToModel(&m)

	assert.Equal(t, "Giữ nguyên", m.Name)
	assert.Equal(t, "$$$", m.PriceRange, "field đã có giá trị thì default không được ghi đè")
	assert.True(t, m.IsActive)
	assert.Equal(t, int64(3), m.Retries)
}

func TestGetInsertDefaults_BoQuaFieldKhongBsonTag(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultTagModel{}))

	assert.NotContains(t, defaults, "Skipped", "field bson:\"-\" không được có default")
	assert.NotContains(t, defaults, "name", "field không có tag default không được xuất hiện")
	assert.Equal(t, "$$", defaults["price_range"])
	assert.Equal(t, true, defaults["is_active"])
}
