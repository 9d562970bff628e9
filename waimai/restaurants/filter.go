package restaurants

import (
	"sort"
	"strings"
)

// Criteria mirrors the filter panel fields. Nil numeric bounds mean
// "no constraint"; empty strings mean "any".
type Criteria struct {
	Cuisine         string   `json:"cuisine,omitempty"`
	MinPrice        *float64 `json:"min_price,omitempty"`
	MaxPrice        *float64 `json:"max_price,omitempty"`
	MinRating       *float64 `json:"min_rating,omitempty"`
	MaxDeliveryTime *int     `json:"max_delivery_time,omitempty"`
	Keyword         string   `json:"keyword,omitempty"`
}

// Filter returns the restaurants matching every set criterion, ordered by
// rating descending then price ascending.
func Filter(list []RestaurantPayload, c Criteria) []RestaurantPayload {
	out := make([]RestaurantPayload, 0, len(list))
	keyword := strings.ToLower(c.Keyword)
	for _, r := range list {
		if c.Cuisine != "" && r.Cuisine != c.Cuisine {
			continue
		}
		if c.MinPrice != nil && r.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && r.Price > *c.MaxPrice {
			continue
		}
		if c.MinRating != nil && r.Rating < *c.MinRating {
			continue
		}
		if c.MaxDeliveryTime != nil && r.DeliveryTime > *c.MaxDeliveryTime {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(r.Name), keyword) &&
			!strings.Contains(strings.ToLower(r.Description), keyword) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Price < out[j].Price
	})
	return out
}

// Cuisines returns the sorted set of distinct cuisines in the list.
func Cuisines(list []RestaurantPayload) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range list {
		if !seen[r.Cuisine] {
			seen[r.Cuisine] = true
			out = append(out, r.Cuisine)
		}
	}
	sort.Strings(out)
	return out
}
