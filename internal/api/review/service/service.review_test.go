// Package rvvc - Test làm tròn rating và shape pipeline tính lại.
package rvvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRoundRating_MotChuSoThapPhan(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{(5.0 + 5.0 + 4.0) / 3.0, 4.7}, // 4.666... → 4.7
		{4.65, 4.7},                    // half-away-from-zero
		{4.64, 4.6},
		{0.0, 0.0},
		{5.0, 5.0},
		{3.333333, 3.3},
	}
	for _, c := range cases {
		if got := RoundRating(c.in); got != c.want {
			t.Errorf("RoundRating(%v) = %v, muốn %v", c.in, got, c.want)
		}
	}
}

// Chạy 2 lần với cùng input phải cho cùng kết quả.
func TestRoundRating_Idempotent(t *testing.T) {
	avg := (5.0 + 5.0 + 4.0) / 3.0
	first := RoundRating(avg)
	second := RoundRating(first)
	if first != second {
		t.Errorf("làm tròn lần 2 đổi kết quả: %v → %v", first, second)
	}
}

func TestRatingPipeline_Shape(t *testing.T) {
	oid := primitive.NewObjectID()
	pipeline := RatingPipeline(oid)
	if len(pipeline) != 2 {
		t.Fatalf("pipeline rating phải có 2 stage, có %d", len(pipeline))
	}

	match := pipeline[0][0]
	if match.Key != "$match" {
		t.Fatalf("stage 1 phải là $match, có %s", match.Key)
	}
	if match.Value.(bson.M)["business_id"] != oid {
		t.Error("$match phải lọc theo business_id dạng ObjectID")
	}

	group := pipeline[1][0].Value.(bson.M)
	if group["_id"] != nil {
		t.Errorf("$group phải gom toàn bộ ( _id=nil ), có: %v", group["_id"])
	}
	avg := group["avg_rating"].(bson.M)
	if avg["$avg"] != "$rating" {
		t.Errorf("avg_rating phải là $avg của $rating, có: %v", avg)
	}
	total := group["total_reviews"].(bson.M)
	if total["$sum"] != 1 {
		t.Errorf("total_reviews phải là $sum 1, có: %v", total)
	}
}

// Doanh nghiệp không có review nào → trung bình 0.0 và 0 review.
func TestSummarizeRatings_KhongCoReview(t *testing.T) {
	for _, rows := range [][]RatingAggregate{nil, {}} {
		summary := SummarizeRatings(rows)
		if summary.Average != 0.0 {
			t.Errorf("aggregate rỗng phải cho trung bình 0.0, có %v", summary.Average)
		}
		if summary.TotalReviews != 0 {
			t.Errorf("aggregate rỗng phải cho 0 review, có %d", summary.TotalReviews)
		}
	}
}

func TestSummarizeRatings_LamTronTrungBinh(t *testing.T) {
	rows := []RatingAggregate{{AvgRating: (5.0 + 5.0 + 4.0) / 3.0, TotalReviews: 3}}
	summary := SummarizeRatings(rows)
	if summary.Average != 4.7 {
		t.Errorf("trung bình 4.666... phải làm tròn thành 4.7, có %v", summary.Average)
	}
	if summary.TotalReviews != 3 {
		t.Errorf("tổng review phải là 3, có %d", summary.TotalReviews)
	}
}
