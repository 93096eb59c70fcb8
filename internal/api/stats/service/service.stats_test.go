// Package statsvc - Test quy đổi rating trung bình toàn nền tảng và shape pipeline.
package statsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// Chưa có doanh nghiệp nào có review → trung bình nền tảng là 0.0.
func TestPlatformAverage_KhongCoDoanhNghiep(t *testing.T) {
	for _, rows := range [][]PlatformRatingRow{nil, {}} {
		if got := PlatformAverage(rows); got != 0.0 {
			t.Errorf("aggregate rỗng phải cho 0.0, có %v", got)
		}
	}
}

func TestPlatformAverage_LamTronMotChuSo(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{4.25, 4.3}, // half-away-from-zero
		{(5.0 + 4.0 + 4.0) / 3.0, 4.3},
		{5.0, 5.0},
	}
	for _, c := range cases {
		got := PlatformAverage([]PlatformRatingRow{{AvgPlatformRating: c.in}})
		if got != c.want {
			t.Errorf("PlatformAverage(%v) = %v, muốn %v", c.in, got, c.want)
		}
	}
}

func TestAverageRatingPipeline_LoaiDoanhNghiepKhongReview(t *testing.T) {
	pipeline := AverageRatingPipeline()
	if len(pipeline) != 2 {
		t.Fatalf("pipeline phải có 2 stage, có %d", len(pipeline))
	}

	match := pipeline[0][0]
	if match.Key != "$match" {
		t.Fatalf("stage 1 phải là $match, có %s", match.Key)
	}
	filter := match.Value.(bson.M)
	if filter["is_active"] != true {
		t.Error("$match phải chỉ chọn doanh nghiệp active")
	}
	reviews, ok := filter["total_reviews"].(bson.M)
	if !ok || reviews["$gt"] != 0 {
		t.Error("$match phải loại doanh nghiệp 0 review")
	}

	group := pipeline[1][0].Value.(bson.M)
	avg := group["avg_platform_rating"].(bson.M)
	if avg["$avg"] != "$rating_average" {
		t.Errorf("$group phải tính $avg trên rating_average, có %v", avg["$avg"])
	}
}
