package controllers

import (
	"context"
	"strings"
	"testing"

	"waimai/waimai/restaurants"
	"waimai/waimai/utils/types"
)

func newTestController() *RecommendController {
	return NewRecommendController(restaurants.SampleCatalog(), nil)
}

func TestChatFallbackSpicy(t *testing.T) {
	ctrl := newTestController()
	resp := ctrl.Chat(context.Background(), types.ChatRequest{Message: "我想吃辣的"}, "北京市")

	if resp.Message == "" {
		t.Fatalf("message must not be empty")
	}
	if len(resp.Restaurants) != 1 {
		t.Fatalf("expected exactly 1 recommendation, got %d", len(resp.Restaurants))
	}
	r := resp.Restaurants[0]
	if r.Cuisine != "川菜" && r.Cuisine != "湘菜" {
		t.Errorf("expected a spicy cuisine, got %+v", r)
	}
	if r.Image1 == "" || r.Image2 == "" {
		t.Errorf("recommended restaurant must carry dish images: %+v", r)
	}
}

func TestChatFallbackPriceHint(t *testing.T) {
	ctrl := newTestController()
	resp := ctrl.Chat(context.Background(), types.ChatRequest{Message: "人均50左右"}, "北京市")

	if len(resp.Restaurants) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(resp.Restaurants))
	}
	price := resp.Restaurants[0].Price
	if price < 30 || price > 70 {
		t.Errorf("price %v outside the ±20 band around 50", price)
	}
}

func TestChatFallbackBBQ(t *testing.T) {
	ctrl := newTestController()
	resp := ctrl.Chat(context.Background(), types.ChatRequest{Message: "想吃烧烤"}, "北京市")

	if len(resp.Restaurants) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(resp.Restaurants))
	}
	r := resp.Restaurants[0]
	if !strings.Contains(r.Name, "烤") && !strings.Contains(r.Description, "烤") &&
		!strings.Contains(r.SignatureDish, "烤") {
		t.Errorf("bbq request must pick a grill restaurant, got %+v", r)
	}
}

func TestChatFallbackAlwaysRecommends(t *testing.T) {
	ctrl := newTestController()
	resp := ctrl.Chat(context.Background(), types.ChatRequest{Message: "随便"}, "北京市")
	if len(resp.Restaurants) != 1 {
		t.Errorf("even a vague request yields one pick, got %d", len(resp.Restaurants))
	}
}

func TestRecommendFiltersAndReasons(t *testing.T) {
	ctrl := newTestController()
	minRating := 4.6
	resp := ctrl.Recommend(context.Background(), restaurants.Criteria{MinRating: &minRating})

	if len(resp.Data) == 0 {
		t.Fatalf("expected matches")
	}
	for _, r := range resp.Data {
		if r.Rating < minRating {
			t.Errorf("rating %v below threshold: %+v", r.Rating, r)
		}
	}
	if len(resp.Recommendations) == 0 || len(resp.Recommendations) > 5 {
		t.Errorf("expected 1-5 reasons, got %d", len(resp.Recommendations))
	}
	for _, rec := range resp.Recommendations {
		if rec.Reason == "" {
			t.Errorf("empty reason for %s", rec.Name)
		}
	}
}

func TestCuisinesSortedUnique(t *testing.T) {
	got := newTestController().Cuisines()
	if len(got) == 0 {
		t.Fatalf("expected cuisines")
	}
	seen := map[string]bool{}
	for _, c := range got {
		if seen[c] {
			t.Errorf("duplicate cuisine %q", c)
		}
		seen[c] = true
	}
}

func TestPriceHint(t *testing.T) {
	cases := []struct {
		in     string
		lo, hi float64
		ok     bool
	}{
		{"人均50左右", 30, 70, true},
		{"100左右", 80, 120, true},
		{"30元以内", 10, 50, true},
		{"15块的快餐", 0, 35, true},
		{"我想吃辣的", 0, 0, false},
	}
	for _, c := range cases {
		lo, hi, ok := priceHint(c.in)
		if ok != c.ok || lo != c.lo || hi != c.hi {
			t.Errorf("priceHint(%q) = %v,%v,%v want %v,%v,%v", c.in, lo, hi, ok, c.lo, c.hi, c.ok)
		}
	}
}

func TestAttachDishImages(t *testing.T) {
	two := attachDishImages(restaurants.RestaurantPayload{SignatureDish: "麻婆豆腐、水煮鱼"})
	if two.Image1 == "" || two.Image2 == "" {
		t.Fatalf("both images must be set: %+v", two)
	}
	if two.Image1 == two.Image2 {
		t.Errorf("two dishes should yield distinct images")
	}

	one := attachDishImages(restaurants.RestaurantPayload{SignatureDish: "麻婆豆腐"})
	if one.Image1 == one.Image2 {
		t.Errorf("single dish should use two different shots")
	}

	none := attachDishImages(restaurants.RestaurantPayload{})
	if none.Image1 == "" || none.Image2 == "" {
		t.Errorf("default images must be filled in: %+v", none)
	}
}
