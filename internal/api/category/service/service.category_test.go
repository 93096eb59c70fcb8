// Package catvc - Test shape pipeline đếm live business_count.
package catvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// findStage tìm stage đầu tiên có key cho trước, trả về value và vị trí.
func findStage(t *testing.T, pipeline mongo.Pipeline, key string) (interface{}, int) {
	t.Helper()
	for i, stage := range pipeline {
		if stage[0].Key == key {
			return stage[0].Value, i
		}
	}
	t.Fatalf("pipeline thiếu stage %s", key)
	return nil, -1
}

func assertLiveCountLookup(t *testing.T, pipeline mongo.Pipeline) {
	t.Helper()

	lookupVal, _ := findStage(t, pipeline, "$lookup")
	lookup := lookupVal.(bson.M)
	let := lookup["let"].(bson.M)
	if let["category_name"] != "$name" {
		t.Errorf("$lookup phải bind tên danh mục qua let, có: %v", let)
	}
	sub := lookup["pipeline"].(bson.A)
	subMatch := sub[0].(bson.M)["$match"].(bson.M)
	if subMatch["is_active"] != true {
		t.Error("sub-pipeline phải chỉ đếm doanh nghiệp active")
	}
	expr := subMatch["$expr"].(bson.M)["$eq"].(bson.A)
	if expr[0] != "$category" || expr[1] != "$$category_name" {
		t.Errorf("$expr phải so category với $$category_name, có: %v", expr)
	}

	addFieldsVal, _ := findStage(t, pipeline, "$addFields")
	count := addFieldsVal.(bson.M)["business_count"].(bson.M)
	ifNull := count["$ifNull"].(bson.A)
	if ifNull[1] != 0 {
		t.Errorf("danh mục trống phải cho count 0, có: %v", ifNull[1])
	}
}

func TestListAllPipeline_DemLiveVaSortTheoTen(t *testing.T) {
	pipeline := ListAllPipeline()

	matchVal, pos := findStage(t, pipeline, "$match")
	if pos != 0 || matchVal.(bson.M)["is_active"] != true {
		t.Error("stage đầu phải lọc danh mục active")
	}

	assertLiveCountLookup(t, pipeline)

	sortVal, _ := findStage(t, pipeline, "$sort")
	sortDoc := sortVal.(bson.D)
	if sortDoc[0].Key != "name" || sortDoc[0].Value != 1 {
		t.Errorf("danh sách phải sort theo tên tăng dần, có: %v", sortDoc)
	}
	if _, ok := hasStage(pipeline, "$limit"); ok {
		t.Error("danh sách đầy đủ không được $limit")
	}
}

func TestPopularPipeline_SortTheoCountGiamDanVaLimit(t *testing.T) {
	pipeline := PopularPipeline(10)

	assertLiveCountLookup(t, pipeline)

	sortVal, _ := findStage(t, pipeline, "$sort")
	sortDoc := sortVal.(bson.D)
	if sortDoc[0].Key != "business_count" || sortDoc[0].Value != -1 {
		t.Errorf("popular phải sort business_count giảm dần, có: %v", sortDoc)
	}

	limitVal, ok := hasStage(pipeline, "$limit")
	if !ok || limitVal != 10 {
		t.Errorf("popular phải có $limit 10, có: %v", limitVal)
	}
}

func hasStage(pipeline mongo.Pipeline, key string) (interface{}, bool) {
	for _, stage := range pipeline {
		if stage[0].Key == key {
			return stage[0].Value, true
		}
	}
	return nil, false
}
