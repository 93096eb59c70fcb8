// Package busvc - Test filter danh sách, comparator featured và shape pipeline bản đồ.
package busvc

import (
	"sort"
	"testing"

	busdto "asteria_local/internal/api/business/dto"
	busmodels "asteria_local/internal/api/business/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilter_MacDinhChiLocActive(t *testing.T) {
	filter := BuildListFilter(busdto.BusinessListQuery{})
	if len(filter) != 1 {
		t.Errorf("filter mặc định phải chỉ có is_active, có: %v", filter)
	}
	if active, ok := filter["is_active"].(bool); !ok || !active {
		t.Error("filter mặc định thiếu is_active=true")
	}
}

func TestBuildListFilter_CategoryVaCity(t *testing.T) {
	filter := BuildListFilter(busdto.BusinessListQuery{Category: "Restaurantes", City: "Tampico"})
	if filter["category"] != "Restaurantes" {
		t.Errorf("filter category sai: %v", filter["category"])
	}
	if filter["address.city"] != "Tampico" {
		t.Errorf("filter city phải nằm ở address.city, có: %v", filter["address.city"])
	}
	if _, ok := filter["$or"]; ok {
		t.Error("không có search thì không được thêm $or")
	}
}

func TestBuildListFilter_SearchKhongPhanBietHoaThuong(t *testing.T) {
	filter := BuildListFilter(busdto.BusinessListQuery{Search: "café"})
	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("search phải sinh $or với 2 nhánh name/description, có: %v", filter["$or"])
	}
	for _, branch := range or {
		m := branch.(bson.M)
		for field, cond := range m {
			re := cond.(bson.M)
			if re["$options"] != "i" {
				t.Errorf("nhánh %s thiếu $options=i", field)
			}
			if re["$regex"] != "café" {
				t.Errorf("nhánh %s pattern sai: %v", field, re["$regex"])
			}
		}
	}
}

func TestBuildListFilter_SearchEscapeKyTuRegex(t *testing.T) {
	filter := BuildListFilter(busdto.BusinessListQuery{Search: "a.b*c"})
	or := filter["$or"].(bson.A)
	re := or[0].(bson.M)["name"].(bson.M)
	if re["$regex"] != `a\.b\*c` {
		t.Errorf("search phải match substring literal, pattern: %v", re["$regex"])
	}
}

func intp(n int) *int { return &n }

func TestCompareFeatured_CoViTriLuonTruocKhongViTri(t *testing.T) {
	positioned := &busmodels.Business{FeaturedPosition: intp(5), RatingAverage: 1.0}
	unpositioned := &busmodels.Business{RatingAverage: 5.0, TotalReviews: 999}
	if CompareFeatured(positioned, unpositioned) >= 0 {
		t.Error("doanh nghiệp có featured_position phải xếp trước doanh nghiệp không có, bất kể rating")
	}
}

func TestCompareFeatured_ViTriTangDan(t *testing.T) {
	a := &busmodels.Business{FeaturedPosition: intp(1)}
	b := &busmodels.Business{FeaturedPosition: intp(2)}
	if CompareFeatured(a, b) >= 0 {
		t.Error("vị trí 1 phải trước vị trí 2")
	}
}

func TestCompareFeatured_CungKhongViTri_RatingGiamDan(t *testing.T) {
	a := &busmodels.Business{RatingAverage: 4.9}
	b := &busmodels.Business{RatingAverage: 4.3}
	if CompareFeatured(a, b) >= 0 {
		t.Error("cùng không featured thì rating cao hơn phải trước")
	}
}

func TestCompareFeatured_TieBreakTheoTotalReviews(t *testing.T) {
	a := &busmodels.Business{RatingAverage: 4.5, TotalReviews: 300}
	b := &busmodels.Business{RatingAverage: 4.5, TotalReviews: 100}
	if CompareFeatured(a, b) >= 0 {
		t.Error("cùng rating thì nhiều review hơn phải trước")
	}
}

// Sort cả danh sách bằng comparator rồi kiểm tra bất biến thứ tự:
// mọi cặp A trước B đều thoả hợp đồng featured.
func TestCompareFeatured_ThuTuToanCuc(t *testing.T) {
	businesses := []*busmodels.Business{
		{Name: "E", RatingAverage: 4.9, TotalReviews: 87},
		{Name: "A", FeaturedPosition: intp(3), RatingAverage: 4.6},
		{Name: "D", RatingAverage: 4.6, TotalReviews: 267},
		{Name: "B", FeaturedPosition: intp(1), RatingAverage: 4.8},
		{Name: "C", RatingAverage: 4.6, TotalReviews: 203},
	}
	sort.SliceStable(businesses, func(i, j int) bool {
		return CompareFeatured(businesses[i], businesses[j]) < 0
	})

	want := []string{"B", "A", "E", "D", "C"}
	for i, b := range businesses {
		if b.Name != want[i] {
			t.Fatalf("thứ tự sai tại %d: muốn %s, có %s", i, want[i], b.Name)
		}
	}
}

func TestFeaturedPipeline_Shape(t *testing.T) {
	pipeline := FeaturedPipeline(10)
	if len(pipeline) != 4 {
		t.Fatalf("pipeline featured phải có 4 stage, có %d", len(pipeline))
	}

	addFields := pipeline[1][0]
	if addFields.Key != "$addFields" {
		t.Fatalf("stage 2 phải là $addFields, có %s", addFields.Key)
	}
	sortPos := addFields.Value.(bson.M)["sort_position"].(bson.M)
	ifNull := sortPos["$ifNull"].(bson.A)
	if ifNull[0] != "$featured_position" || ifNull[1] != FeaturedPositionSentinel {
		t.Errorf("$ifNull phải thay featured_position vắng mặt bằng sentinel, có: %v", ifNull)
	}

	sortStage := pipeline[2][0].Value.(bson.D)
	wantKeys := []string{"sort_position", "rating_average", "total_reviews"}
	wantOrder := []int{1, -1, -1}
	for i, e := range sortStage {
		if e.Key != wantKeys[i] || e.Value != wantOrder[i] {
			t.Errorf("sort key %d sai: %s=%v", i, e.Key, e.Value)
		}
	}

	if limit := pipeline[3][0].Value; limit != 10 {
		t.Errorf("$limit sai: %v", limit)
	}
}

func TestMapPinsPipeline_KhoaGomNhom(t *testing.T) {
	pipeline := MapPinsPipeline("Restaurantes", "")

	match := pipeline[0][0].Value.(bson.M)
	if match["category"] != "Restaurantes" {
		t.Errorf("match category sai: %v", match["category"])
	}
	if _, ok := match["address.city"]; ok {
		t.Error("city rỗng thì không được đưa vào match")
	}

	group := pipeline[1][0].Value.(bson.M)
	groupID := group["_id"].(bson.M)
	for _, key := range []string{"category", "neighborhood", "lat", "lng"} {
		if _, ok := groupID[key]; !ok {
			t.Errorf("khóa gom nhóm thiếu %s", key)
		}
	}
	if _, ok := group["avg_lat"]; !ok {
		t.Error("pipeline thiếu avg_lat — tọa độ pin phải là trung bình cộng")
	}

	lastStage := pipeline[len(pipeline)-1][0]
	if lastStage.Key != "$limit" || lastStage.Value != MaxMapPins {
		t.Errorf("pipeline phải cap %d nhóm, stage cuối: %s=%v", MaxMapPins, lastStage.Key, lastStage.Value)
	}
}

func TestBuildUpdateSet_ChiGomFieldKhacNil(t *testing.T) {
	name := "Tên mới"
	active := false
	input := &busdto.BusinessUpdateInput{Name: &name, IsActive: &active}

	set := buildUpdateSet(input)
	if len(set) != 2 {
		t.Fatalf("chỉ 2 field được gửi, set có %d: %v", len(set), set)
	}
	if set["name"] != "Tên mới" {
		t.Errorf("name sai: %v", set["name"])
	}
	if set["is_active"] != false {
		t.Errorf("is_active=false vẫn phải được ghi (khác nil), có: %v", set["is_active"])
	}
}

func TestBuildUpdateSet_InputRong(t *testing.T) {
	if set := buildUpdateSet(&busdto.BusinessUpdateInput{}); len(set) != 0 {
		t.Errorf("input rỗng phải cho set rỗng, có: %v", set)
	}
}

func TestActiveByIdFilter_ChiChonDoanhNghiepActive(t *testing.T) {
	oid := primitive.NewObjectID()
	filter := ActiveByIdFilter(oid)
	if len(filter) != 2 {
		t.Fatalf("filter phải có đúng 2 điều kiện, có %d", len(filter))
	}
	if filter["_id"] != oid {
		t.Error("filter phải lọc theo _id dạng ObjectID")
	}
	if filter["is_active"] != true {
		t.Error("filter phải chỉ chọn doanh nghiệp active")
	}
}
